package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
	"github.com/rafabene/poemario-backend/internal/handlers/dto"
	"github.com/rafabene/poemario-backend/internal/handlers/middleware"
	"github.com/rafabene/poemario-backend/internal/services"
)

// PoemHandler lida com requisições HTTP relacionadas a poemas
type PoemHandler struct {
	poemService *services.PoemService
	voteService *services.VoteService
}

// NewPoemHandler cria um novo PoemHandler
func NewPoemHandler(poemService *services.PoemService, voteService *services.VoteService) *PoemHandler {
	return &PoemHandler{
		poemService: poemService,
		voteService: voteService,
	}
}

// CreateDraft cria um novo poema em rascunho para o usuário autenticado
// @Summary      Criar rascunho de poema
// @Tags         poems
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CreateDraftRequest  true  "Dados do poema"
// @Success      201      {object}  dto.PoemResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /poems [post]
func (h *PoemHandler) CreateDraft(c *gin.Context) {
	authorID := middleware.GetUserID(c)
	if authorID == "" {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.unauthorized"))
		return
	}

	var req dto.CreateDraftRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.FromBindingError(err)))
		return
	}

	poem, err := h.poemService.CreateDraft(c.Request.Context(), services.CreateDraftInput{
		AuthorID:  authorID,
		Title:     req.Title,
		Content:   req.Content,
		MoodColor: entities.MoodColor(req.MoodColor),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPoemResponse(poem))
}

// GetPoem busca um poema por ID
// @Summary      Buscar poema
// @Tags         poems
// @Produce      json
// @Param        id   path      string  true  "ID do poema"
// @Success      200  {object}  dto.PoemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /poems/{id} [get]
func (h *PoemHandler) GetPoem(c *gin.Context) {
	poem, err := h.poemService.GetPoem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPoemResponse(poem))
}

// UpdatePoem atualiza parcialmente um poema em rascunho
// @Summary      Atualizar poema
// @Tags         poems
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "ID do poema"
// @Param        request  body      dto.UpdatePoemRequest  true  "Campos a atualizar"
// @Success      200      {object}  dto.PoemResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /poems/{id} [patch]
func (h *PoemHandler) UpdatePoem(c *gin.Context) {
	var req dto.UpdatePoemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.FromBindingError(err)))
		return
	}

	var mood *entities.MoodColor
	if req.MoodColor != nil {
		m := entities.MoodColor(*req.MoodColor)
		mood = &m
	}

	poem, err := h.poemService.UpdatePoem(c.Request.Context(), c.Param("id"), services.UpdatePoemInput{
		Title:     req.Title,
		Content:   req.Content,
		MoodColor: mood,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPoemResponse(poem))
}

// Publish publica um poema em rascunho
// @Summary      Publicar poema
// @Tags         poems
// @Produce      json
// @Param        id   path      string  true  "ID do poema"
// @Success      200  {object}  dto.PoemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /poems/{id}/publish [post]
func (h *PoemHandler) Publish(c *gin.Context) {
	poem, err := h.poemService.Publish(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPoemResponse(poem))
}

// DeletePoem remove um poema sem votos
// @Summary      Remover poema
// @Tags         poems
// @Param        id  path  string  true  "ID do poema"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /poems/{id} [delete]
func (h *PoemHandler) DeletePoem(c *gin.Context) {
	if err := h.poemService.DeletePoem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListPoems lista poemas com paginação
// @Summary      Listar poemas
// @Tags         poems
// @Produce      json
// @Param        limit      query     int     false  "Tamanho da página"
// @Param        offset     query     int     false  "Deslocamento"
// @Param        sort       query     string  false  "Campo de ordenação"
// @Param        direction  query     string  false  "asc ou desc"
// @Success      200        {object}  dto.PagedResponse
// @Router       /poems [get]
func (h *PoemHandler) ListPoems(c *gin.Context) {
	page := dto.ParsePagination(c)

	poems, total, err := h.poemService.ListPoems(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPagedResponse(dto.ToPoemResponses(poems), total, page))
}

// ListUserPoems lista os poemas de um autor com paginação
// @Summary      Listar poemas de um autor
// @Tags         poems
// @Produce      json
// @Param        id      path      string  true   "ID do autor"
// @Param        limit   query     int     false  "Tamanho da página"
// @Param        offset  query     int     false  "Deslocamento"
// @Success      200     {object}  dto.PagedResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /users/{id}/poems [get]
func (h *PoemHandler) ListUserPoems(c *gin.Context) {
	page := dto.ParsePagination(c)

	poems, total, err := h.poemService.ListPoemsForUser(c.Request.Context(), c.Param("id"), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPagedResponse(dto.ToPoemResponses(poems), total, page))
}

// ListUserPublishedPoems lista apenas os poemas publicados de um autor
// @Summary      Listar poemas publicados de um autor
// @Tags         poems
// @Produce      json
// @Param        id   path      string  true  "ID do autor"
// @Success      200  {array}   dto.PoemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /users/{id}/poems/published [get]
func (h *PoemHandler) ListUserPublishedPoems(c *gin.Context) {
	poems, err := h.poemService.ListPublishedForUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPoemResponses(poems))
}

// CastVote concede ou atualiza a pena do usuário autenticado em um poema.
// Retorna 201 quando o voto foi criado e 200 quando apenas o nível mudou.
// @Summary      Conceder pena
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "ID do poema"
// @Param        request  body      dto.CastVoteRequest  true  "Nível da pena"
// @Success      200      {object}  dto.VoteResponse
// @Success      201      {object}  dto.VoteResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /poems/{id}/votes [post]
func (h *PoemHandler) CastVote(c *gin.Context) {
	voterID := middleware.GetUserID(c)
	if voterID == "" {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.unauthorized"))
		return
	}

	var req dto.CastVoteRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.FromBindingError(err)))
		return
	}

	vote, created, err := h.voteService.CastVote(c.Request.Context(), voterID, c.Param("id"), entities.FeatherType(req.FeatherType))
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	c.JSON(status, dto.ToVoteResponse(vote))
}

// ListPoemVotes lista os votos de um poema com paginação
// @Summary      Listar votos de um poema
// @Tags         votes
// @Produce      json
// @Param        id      path      string  true   "ID do poema"
// @Param        limit   query     int     false  "Tamanho da página"
// @Param        offset  query     int     false  "Deslocamento"
// @Success      200     {object}  dto.PagedResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /poems/{id}/votes [get]
func (h *PoemHandler) ListPoemVotes(c *gin.Context) {
	page := dto.ParsePagination(c)

	votes, total, err := h.voteService.ListVotesByPoem(c.Request.Context(), c.Param("id"), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPagedResponse(dto.ToVoteResponses(votes), total, page))
}
