package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Permission representa uma permissão específica
type Permission string

const (
	// User permissions
	PermissionUserRead   Permission = "users.read"
	PermissionUserWrite  Permission = "users.write"
	PermissionUserDelete Permission = "users.delete"

	// Poem permissions
	PermissionPoemRead  Permission = "poems.read"
	PermissionPoemWrite Permission = "poems.write"

	// Vote permissions
	PermissionVoteRead  Permission = "votes.read"
	PermissionVoteWrite Permission = "votes.write"

	// Catalog permissions (totems e rewards)
	PermissionCatalogRead  Permission = "catalog.read"
	PermissionCatalogWrite Permission = "catalog.write"
)

// RolePermissions mapeia roles para suas permissões
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionUserRead,
		PermissionUserWrite,
		PermissionUserDelete,
		PermissionPoemRead,
		PermissionPoemWrite,
		PermissionVoteRead,
		PermissionVoteWrite,
		PermissionCatalogRead,
		PermissionCatalogWrite,
	},
	RoleUser: {
		PermissionUserRead,
		PermissionPoemRead,
		PermissionPoemWrite,
		PermissionVoteRead,
		PermissionVoteWrite,
		PermissionCatalogRead,
	},
}

// GetPermissions retorna permissões de um role
func (r Role) GetPermissions() []Permission {
	return RolePermissions[r]
}

// HasPermission verifica se role tem permissão
func (r Role) HasPermission(permission Permission) bool {
	permissions := RolePermissions[r]
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}
