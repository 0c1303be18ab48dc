package postgres

// UserModel é o model GORM para usuários
type UserModel struct {
	ID                  string  `gorm:"type:uuid;primary_key"`
	Email               string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Pseudo              string  `gorm:"type:varchar(100);not null"`
	PasswordHash        string  `gorm:"type:varchar(255);not null"`
	MoodColor           string  `gorm:"type:varchar(20);not null;default:BLUE"`
	TotemID             *string `gorm:"type:uuid;index"`
	Roles               string  `gorm:"type:varchar(255);not null"` // lista separada por vírgulas
	FailedLoginAttempts int     `gorm:"not null;default:0"`
	LockedAt            *int64
	CreatedAt           int64 `gorm:"autoCreateTime;index"`
	UpdatedAt           int64 `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// PoemModel é o model GORM para poemas
type PoemModel struct {
	ID          string  `gorm:"type:uuid;primary_key"`
	AuthorID    string  `gorm:"type:uuid;not null;index"`
	Status      string  `gorm:"type:varchar(20);not null;index"`
	MoodColor   string  `gorm:"type:varchar(20);not null;default:BLUE"`
	SymbolType  *string `gorm:"type:varchar(30)"`
	Title       string  `gorm:"type:varchar(500);not null"`
	Content     string  `gorm:"type:text;not null"`
	PublishedAt *int64  `gorm:"index"`
	CreatedAt   int64   `gorm:"autoCreateTime;index"`
	UpdatedAt   int64   `gorm:"autoUpdateTime"`
}

func (PoemModel) TableName() string {
	return "poems"
}

// FeatherVoteModel é o model GORM para votos de pena.
// O índice único em (voter_id, poem_id) espelha, no armazenamento, a regra de
// no máximo um voto por par; a deleção do poema cascateia para os votos.
// Timestamps em milissegundos: a troca de pena deve avançar o UpdatedAt mesmo
// quando acontece no mesmo segundo da criação.
type FeatherVoteModel struct {
	ID          string    `gorm:"type:uuid;primary_key"`
	VoterID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_votes_voter_poem"`
	PoemID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_votes_voter_poem;index"`
	Poem        PoemModel `gorm:"foreignKey:PoemID;constraint:OnDelete:CASCADE"`
	FeatherType string    `gorm:"type:varchar(20);not null;default:BRONZE"`
	CreatedAt   int64     `gorm:"autoCreateTime:milli"`
	UpdatedAt   int64     `gorm:"autoUpdateTime:milli;index"`
}

func (FeatherVoteModel) TableName() string {
	return "feather_votes"
}

// TotemModel é o model GORM para totens
type TotemModel struct {
	ID          string `gorm:"type:uuid;primary_key"`
	Key         string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	PictureURL  string `gorm:"type:varchar(500)"`
	CreatedAt   int64  `gorm:"autoCreateTime"`
	UpdatedAt   int64  `gorm:"autoUpdateTime"`
}

func (TotemModel) TableName() string {
	return "totems"
}

// RewardModel é o model GORM para recompensas
type RewardModel struct {
	ID          string `gorm:"type:uuid;primary_key"`
	Name        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   int64  `gorm:"autoCreateTime"`
	UpdatedAt   int64  `gorm:"autoUpdateTime"`
}

func (RewardModel) TableName() string {
	return "rewards"
}

// UserRewardModel é o model GORM para vínculos usuário-recompensa
type UserRewardModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	UserID    string `gorm:"type:uuid;not null;uniqueIndex:idx_user_rewards_pair"`
	RewardID  string `gorm:"type:uuid;not null;uniqueIndex:idx_user_rewards_pair"`
	CreatedAt int64  `gorm:"autoCreateTime"`
}

func (UserRewardModel) TableName() string {
	return "user_rewards"
}
