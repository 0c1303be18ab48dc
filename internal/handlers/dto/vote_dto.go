package dto

import (
	"time"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
)

// CastVoteRequest representa a requisição para conceder uma pena a um poema
type CastVoteRequest struct {
	FeatherType string `json:"feather_type" binding:"omitempty,feathertype"`
}

// VoteResponse representa a resposta de um voto de pena
type VoteResponse struct {
	ID          string    `json:"id"`
	VoterID     string    `json:"voter_id"`
	PoemID      string    `json:"poem_id"`
	FeatherType string    `json:"feather_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToVoteResponse converte uma entidade FeatherVote para VoteResponse
func ToVoteResponse(vote *entities.FeatherVote) VoteResponse {
	return VoteResponse{
		ID:          vote.ID,
		VoterID:     vote.VoterID,
		PoemID:      vote.PoemID,
		FeatherType: string(vote.FeatherType),
		CreatedAt:   vote.CreatedAt,
		UpdatedAt:   vote.UpdatedAt,
	}
}

// ToVoteResponses converte uma lista de entidades FeatherVote para VoteResponse
func ToVoteResponses(votes []*entities.FeatherVote) []VoteResponse {
	responses := make([]VoteResponse, len(votes))
	for i, vote := range votes {
		responses[i] = ToVoteResponse(vote)
	}
	return responses
}
