package entities

// SymbolType representa a classificação simbólica derivada de um poema
type SymbolType string

const (
	SymbolWings       SymbolType = "WINGS"
	SymbolVortex      SymbolType = "VORTEX"
	SymbolHorizon     SymbolType = "HORIZON"
	SymbolHalo        SymbolType = "HALO"
	SymbolMeteorShard SymbolType = "METEOR_SHARD"
)

// scoreBand classifica a pontuação acumulada de penas
type scoreBand int

const (
	bandLow scoreBand = iota
	bandMid
	bandHigh
)

const (
	midScoreThreshold  = 20
	highScoreThreshold = 60
)

// symbolTable mapeia (faixa de pontuação, família de humor) para um símbolo.
// A faixa alta reutiliza a linha da faixa média: pontuações além do limiar
// mudam a intensidade de apresentação em outra camada, não o símbolo.
var symbolTable = map[scoreBand]map[MoodFamily]SymbolType{
	bandLow: {
		FamilyDynamic:       SymbolWings,
		FamilyDeep:          SymbolVortex,
		FamilyContemplative: SymbolHorizon,
		FamilyDefault:       SymbolHalo,
	},
	bandMid: {
		FamilyDynamic:       SymbolMeteorShard,
		FamilyDeep:          SymbolVortex,
		FamilyContemplative: SymbolHorizon,
		FamilyDefault:       SymbolWings,
	},
	bandHigh: {
		FamilyDynamic:       SymbolMeteorShard,
		FamilyDeep:          SymbolVortex,
		FamilyContemplative: SymbolHorizon,
		FamilyDefault:       SymbolWings,
	},
}

// VoteScore calcula a pontuação agregada de uma lista de votos.
// O resultado independe da ordem dos votos.
func VoteScore(votes []FeatherVote) int {
	score := 0
	for _, vote := range votes {
		score += vote.FeatherType.Weight()
	}
	return score
}

// ComputeSymbol calcula o símbolo de um poema a partir do humor e dos votos.
// Função pura, total: sem votos a pontuação é zero (faixa baixa); sem cor de
// humor o resultado é nil.
func ComputeSymbol(mood MoodColor, votes []FeatherVote) *SymbolType {
	if mood == "" {
		return nil
	}

	band := bandLow
	switch score := VoteScore(votes); {
	case score >= highScoreThreshold:
		band = bandHigh
	case score >= midScoreThreshold:
		band = bandMid
	}

	symbol := symbolTable[band][mood.Family()]
	return &symbol
}
