package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
	"github.com/rafabene/poemario-backend/internal/handlers/dto"
	"github.com/rafabene/poemario-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser cria um novo usuário
// @Summary      Criar usuário
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CreateUserRequest  true  "Dados do usuário"
// @Success      201      {object}  dto.UserResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.FromBindingError(err)))
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), services.CreateUserInput{
		Email:     req.Email,
		Pseudo:    req.Pseudo,
		Password:  req.Password,
		MoodColor: entities.MoodColor(req.MoodColor),
		TotemID:   req.TotemID,
		TotemKey:  req.TotemKey,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// GetUser busca um usuário por ID
// @Summary      Buscar usuário
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "ID do usuário"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateUser atualiza parcialmente um usuário
// @Summary      Atualizar usuário
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "ID do usuário"
// @Param        request  body      dto.UpdateUserRequest  true  "Campos a atualizar"
// @Success      200      {object}  dto.UserResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.FromBindingError(err)))
		return
	}

	var mood *entities.MoodColor
	if req.MoodColor != nil {
		m := entities.MoodColor(*req.MoodColor)
		mood = &m
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), services.UpdateUserInput{
		Email:     req.Email,
		Pseudo:    req.Pseudo,
		Password:  req.Password,
		MoodColor: mood,
		TotemID:   req.TotemID,
		TotemKey:  req.TotemKey,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteUser remove um usuário sem registros dependentes
// @Summary      Remover usuário
// @Tags         users
// @Param        id  path  string  true  "ID do usuário"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListUsers lista usuários com paginação
// @Summary      Listar usuários
// @Tags         users
// @Produce      json
// @Param        limit      query     int     false  "Tamanho da página"
// @Param        offset     query     int     false  "Deslocamento"
// @Param        sort       query     string  false  "Campo de ordenação"
// @Param        direction  query     string  false  "asc ou desc"
// @Success      200        {object}  dto.PagedResponse
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page := dto.ParsePagination(c)

	users, total, err := h.userService.ListUsers(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPagedResponse(dto.ToUserResponses(users), total, page))
}
