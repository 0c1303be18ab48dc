package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/poemario-backend/internal/handlers/dto"
	"github.com/rafabene/poemario-backend/internal/services"
)

// VoteHandler lida com requisições HTTP relacionadas a votos de pena
type VoteHandler struct {
	voteService *services.VoteService
}

// NewVoteHandler cria um novo VoteHandler
func NewVoteHandler(voteService *services.VoteService) *VoteHandler {
	return &VoteHandler{voteService: voteService}
}

// GetVote busca um voto por ID
// @Summary      Buscar voto
// @Tags         votes
// @Produce      json
// @Param        id   path      string  true  "ID do voto"
// @Success      200  {object}  dto.VoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /votes/{id} [get]
func (h *VoteHandler) GetVote(c *gin.Context) {
	vote, err := h.voteService.GetVote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVoteResponse(vote))
}

// DeleteVote remove um voto e recalcula o símbolo do poema
// @Summary      Remover voto
// @Tags         votes
// @Param        id  path  string  true  "ID do voto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /votes/{id} [delete]
func (h *VoteHandler) DeleteVote(c *gin.Context) {
	if err := h.voteService.DeleteVote(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListVotes lista votos com paginação
// @Summary      Listar votos
// @Tags         votes
// @Produce      json
// @Param        limit      query     int     false  "Tamanho da página"
// @Param        offset     query     int     false  "Deslocamento"
// @Param        sort       query     string  false  "Campo de ordenação"
// @Param        direction  query     string  false  "asc ou desc"
// @Success      200        {object}  dto.PagedResponse
// @Router       /votes [get]
func (h *VoteHandler) ListVotes(c *gin.Context) {
	page := dto.ParsePagination(c)

	votes, total, err := h.voteService.ListVotes(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPagedResponse(dto.ToVoteResponses(votes), total, page))
}

// ListUserVotes lista os votos emitidos por um usuário com paginação
// @Summary      Listar votos de um usuário
// @Tags         votes
// @Produce      json
// @Param        id      path      string  true   "ID do usuário"
// @Param        limit   query     int     false  "Tamanho da página"
// @Param        offset  query     int     false  "Deslocamento"
// @Success      200     {object}  dto.PagedResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /users/{id}/votes [get]
func (h *VoteHandler) ListUserVotes(c *gin.Context) {
	page := dto.ParsePagination(c)

	votes, total, err := h.voteService.ListVotesByVoter(c.Request.Context(), c.Param("id"), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPagedResponse(dto.ToVoteResponses(votes), total, page))
}
