package entities

// MoodColor representa a cor de humor de um usuário ou poema
type MoodColor string

const (
	MoodBlue   MoodColor = "BLUE"
	MoodRed    MoodColor = "RED"
	MoodOrange MoodColor = "ORANGE"
	MoodYellow MoodColor = "YELLOW"
	MoodGreen  MoodColor = "GREEN"
	MoodIndigo MoodColor = "INDIGO"
	MoodViolet MoodColor = "VIOLET"
	MoodBlack  MoodColor = "BLACK"
	MoodGrey   MoodColor = "GREY"
)

// DefaultMoodColor é a cor atribuída quando nenhuma é informada
const DefaultMoodColor = MoodBlue

// MoodFamily agrupa cores de humor para o cálculo de símbolos
type MoodFamily string

const (
	FamilyDynamic       MoodFamily = "dynamic"
	FamilyDeep          MoodFamily = "deep"
	FamilyContemplative MoodFamily = "contemplative"
	FamilyDefault       MoodFamily = "default"
)

// moodFamilies mapeia cada cor para sua família
var moodFamilies = map[MoodColor]MoodFamily{
	MoodRed:    FamilyDynamic,
	MoodOrange: FamilyDynamic,
	MoodViolet: FamilyDeep,
	MoodBlack:  FamilyDeep,
	MoodBlue:   FamilyContemplative,
	MoodIndigo: FamilyContemplative,
	MoodGrey:   FamilyContemplative,
}

// Family retorna a família da cor; cores fora do mapa caem na família default
func (m MoodColor) Family() MoodFamily {
	if family, ok := moodFamilies[m]; ok {
		return family
	}
	return FamilyDefault
}

// IsValid verifica se a cor de humor é reconhecida
func (m MoodColor) IsValid() bool {
	switch m {
	case MoodBlue, MoodRed, MoodOrange, MoodYellow, MoodGreen, MoodIndigo, MoodViolet, MoodBlack, MoodGrey:
		return true
	}
	return false
}
