package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/poemario-backend/internal/handlers/dto"
	"github.com/rafabene/poemario-backend/internal/services"
)

// TotemHandler lida com requisições HTTP do catálogo de totens
type TotemHandler struct {
	totemService *services.TotemService
}

// NewTotemHandler cria um novo TotemHandler
func NewTotemHandler(totemService *services.TotemService) *TotemHandler {
	return &TotemHandler{totemService: totemService}
}

// CreateTotem cria um novo totem no catálogo
// @Summary      Criar totem
// @Tags         totems
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CreateTotemRequest  true  "Dados do totem"
// @Success      201      {object}  dto.TotemResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /totems [post]
func (h *TotemHandler) CreateTotem(c *gin.Context) {
	var req dto.CreateTotemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.FromBindingError(err)))
		return
	}

	totem, err := h.totemService.CreateTotem(c.Request.Context(), services.CreateTotemInput{
		Key:         req.Key,
		Name:        req.Name,
		Description: req.Description,
		PictureURL:  req.PictureURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTotemResponse(totem))
}

// GetTotem busca um totem por ID
// @Summary      Buscar totem
// @Tags         totems
// @Produce      json
// @Param        id   path      string  true  "ID do totem"
// @Success      200  {object}  dto.TotemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /totems/{id} [get]
func (h *TotemHandler) GetTotem(c *gin.Context) {
	totem, err := h.totemService.GetTotem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTotemResponse(totem))
}

// UpdateTotem atualiza os dados de apresentação de um totem
// @Summary      Atualizar totem
// @Tags         totems
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "ID do totem"
// @Param        request  body      dto.UpdateTotemRequest  true  "Campos a atualizar"
// @Success      200      {object}  dto.TotemResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /totems/{id} [patch]
func (h *TotemHandler) UpdateTotem(c *gin.Context) {
	var req dto.UpdateTotemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.FromBindingError(err)))
		return
	}

	totem, err := h.totemService.UpdateTotem(c.Request.Context(), c.Param("id"), services.UpdateTotemInput{
		Name:        req.Name,
		Description: req.Description,
		PictureURL:  req.PictureURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTotemResponse(totem))
}

// DeleteTotem remove um totem que não está em uso
// @Summary      Remover totem
// @Tags         totems
// @Param        id  path  string  true  "ID do totem"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /totems/{id} [delete]
func (h *TotemHandler) DeleteTotem(c *gin.Context) {
	if err := h.totemService.DeleteTotem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListTotems lista o catálogo de totens
// @Summary      Listar totens
// @Tags         totems
// @Produce      json
// @Success      200  {array}  dto.TotemResponse
// @Router       /totems [get]
func (h *TotemHandler) ListTotems(c *gin.Context) {
	totems, err := h.totemService.ListTotems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTotemResponses(totems))
}
