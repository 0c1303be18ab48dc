package ports

// Event representa um evento de domínio publicado para assinantes externos
type Event struct {
	Name    string      `json:"name"`
	Payload interface{} `json:"payload"`
}

// Nomes de eventos publicados pelos services
const (
	EventPoemPublished = "poem.published"
	EventVoteCast      = "vote.cast"
	EventVoteRemoved   = "vote.removed"
)

// EventPublisher define a interface para publicação de eventos de domínio.
// A publicação é melhor esforço: falhas de entrega não interrompem a operação
// de negócio que originou o evento.
type EventPublisher interface {
	Publish(event Event)
}
