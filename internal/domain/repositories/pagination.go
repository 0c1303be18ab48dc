package repositories

// SortDirection representa a direção de ordenação de uma listagem
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

const (
	// DefaultLimit é o tamanho de página usado quando nenhum é informado
	DefaultLimit = 20
	// MaxLimit é o tamanho máximo de página aceito
	MaxLimit = 100
)

// Pagination contém os parâmetros de paginação e ordenação de uma listagem.
// SortField é restrito a uma allow-list por entidade; valores não
// reconhecidos caem silenciosamente no campo padrão da entidade.
type Pagination struct {
	Limit     int
	Offset    int
	SortField string
	Direction SortDirection
}

// Normalize limita os valores de paginação e resolve o campo de ordenação
// contra a allow-list informada, caindo no padrão quando necessário
func (p Pagination) Normalize(allowed map[string]bool, defaultField string, defaultDirection SortDirection) Pagination {
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}

	if !allowed[p.SortField] {
		p.SortField = defaultField
	}

	if p.Direction != SortAsc && p.Direction != SortDesc {
		p.Direction = defaultDirection
	}

	return p
}
