package entities

// FeatherType representa o nível de uma pena concedida a um poema
type FeatherType string

const (
	FeatherBronze FeatherType = "BRONZE"
	FeatherSilver FeatherType = "SILVER"
	FeatherGold   FeatherType = "GOLD"
)

// DefaultFeatherType é o nível atribuído quando nenhum é informado
const DefaultFeatherType = FeatherBronze

// featherWeights mapeia cada nível de pena para seu peso na pontuação
var featherWeights = map[FeatherType]int{
	FeatherBronze: 1,
	FeatherSilver: 3,
	FeatherGold:   7,
}

// Weight retorna o peso do nível; níveis desconhecidos não pontuam
func (f FeatherType) Weight() int {
	return featherWeights[f]
}

// IsValid verifica se o nível de pena é reconhecido
func (f FeatherType) IsValid() bool {
	_, ok := featherWeights[f]
	return ok
}
