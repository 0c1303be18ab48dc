package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/poemario-backend/internal/handlers/dto"
	"github.com/rafabene/poemario-backend/internal/services"
)

// RewardHandler lida com requisições HTTP do catálogo de recompensas
type RewardHandler struct {
	rewardService *services.RewardService
}

// NewRewardHandler cria um novo RewardHandler
func NewRewardHandler(rewardService *services.RewardService) *RewardHandler {
	return &RewardHandler{rewardService: rewardService}
}

// CreateReward cria uma nova recompensa no catálogo
// @Summary      Criar recompensa
// @Tags         rewards
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CreateRewardRequest  true  "Dados da recompensa"
// @Success      201      {object}  dto.RewardResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /rewards [post]
func (h *RewardHandler) CreateReward(c *gin.Context) {
	var req dto.CreateRewardRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.FromBindingError(err)))
		return
	}

	reward, err := h.rewardService.CreateReward(c.Request.Context(), services.CreateRewardInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRewardResponse(reward))
}

// GetReward busca uma recompensa por ID
// @Summary      Buscar recompensa
// @Tags         rewards
// @Produce      json
// @Param        id   path      string  true  "ID da recompensa"
// @Success      200  {object}  dto.RewardResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /rewards/{id} [get]
func (h *RewardHandler) GetReward(c *gin.Context) {
	reward, err := h.rewardService.GetReward(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRewardResponse(reward))
}

// DeleteReward remove uma recompensa nunca concedida
// @Summary      Remover recompensa
// @Tags         rewards
// @Param        id  path  string  true  "ID da recompensa"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /rewards/{id} [delete]
func (h *RewardHandler) DeleteReward(c *gin.Context) {
	if err := h.rewardService.DeleteReward(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListRewards lista o catálogo de recompensas
// @Summary      Listar recompensas
// @Tags         rewards
// @Produce      json
// @Success      200  {array}  dto.RewardResponse
// @Router       /rewards [get]
func (h *RewardHandler) ListRewards(c *gin.Context) {
	rewards, err := h.rewardService.ListRewards(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRewardResponses(rewards))
}

// GrantReward concede uma recompensa a um usuário
// @Summary      Conceder recompensa
// @Tags         rewards
// @Produce      json
// @Param        id         path      string  true  "ID do usuário"
// @Param        reward_id  path      string  true  "ID da recompensa"
// @Success      201        {object}  dto.UserRewardResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Failure      409        {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /users/{id}/rewards/{reward_id} [put]
func (h *RewardHandler) GrantReward(c *gin.Context) {
	link, err := h.rewardService.GrantReward(c.Request.Context(), c.Param("id"), c.Param("reward_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserRewardResponse(link))
}

// RevokeReward revoga uma recompensa concedida a um usuário
// @Summary      Revogar recompensa
// @Tags         rewards
// @Param        id         path  string  true  "ID do usuário"
// @Param        reward_id  path  string  true  "ID da recompensa"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /users/{id}/rewards/{reward_id} [delete]
func (h *RewardHandler) RevokeReward(c *gin.Context) {
	if err := h.rewardService.RevokeReward(c.Request.Context(), c.Param("id"), c.Param("reward_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListUserRewards lista as recompensas concedidas a um usuário
// @Summary      Listar recompensas de um usuário
// @Tags         rewards
// @Produce      json
// @Param        id   path      string  true  "ID do usuário"
// @Success      200  {array}   dto.UserRewardResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /users/{id}/rewards [get]
func (h *RewardHandler) ListUserRewards(c *gin.Context) {
	links, err := h.rewardService.ListUserRewards(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserRewardResponses(links))
}
