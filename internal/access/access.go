// Package access решает, может ли вызывающий выполнить операцию класса маршрута,
// и в какой области видимости (scope). Решение - чистая функция от роли и класса.
package access

import (
	"wematch_backend/internal/models"
	"wematch_backend/pkg/apperrors"
)

// RouteClass - классификация маршрута по требуемому набору ролей
type RouteClass string

const (
	ClassPublic        RouteClass = "public"        // без аутентификации, только чтение
	ClassAuthenticated RouteClass = "authenticated" // любой вошедший пользователь
	ClassPersonal      RouteClass = "personal"      // собственные записи любого вошедшего
	ClassManaged       RouteClass = "managed"       // ORGANIZATION (свои) или SUPER_ADMIN (все)
	ClassAdminOnly     RouteClass = "admin_only"    // только SUPER_ADMIN
)

// Scope - ограничение области видимости записей
type Scope string

const (
	ScopePublic Scope = "public" // без фильтра по владельцу, только чтение
	ScopeOwner  Scope = "owner"  // только записи вызывающего
	ScopeAdmin  Scope = "admin"  // без фильтра по владельцу
)

// Anonymous - роль неаутентифицированного вызывающего
const Anonymous models.UserRole = ""

// Ошибки решения. Это общие значения, поэтому не мутируем их.
var (
	ErrUnauthenticated = apperrors.NewUnauthorizedError("Authentication required")
	ErrForbidden       = apperrors.NewForbiddenError("Insufficient role for this operation")
)

// decision - результат для одной ячейки таблицы
type decision struct {
	scope Scope
	err   *apperrors.AppError
}

var (
	allowPublic = decision{scope: ScopePublic}
	allowOwner  = decision{scope: ScopeOwner}
	allowAdmin  = decision{scope: ScopeAdmin}
	deny401     = decision{err: ErrUnauthenticated}
	deny403     = decision{err: ErrForbidden}
)

// table - таблица решений: класс -> роль -> решение
var table = map[RouteClass]map[models.UserRole]decision{
	ClassPublic: {
		Anonymous:                   allowPublic,
		models.UserRoleUser:         allowPublic,
		models.UserRoleOrganization: allowPublic,
		models.UserRoleSuperAdmin:   allowPublic,
	},
	ClassAuthenticated: {
		Anonymous:                   deny401,
		models.UserRoleUser:         allowPublic,
		models.UserRoleOrganization: allowPublic,
		models.UserRoleSuperAdmin:   allowPublic,
	},
	ClassPersonal: {
		Anonymous:                   deny401,
		models.UserRoleUser:         allowOwner,
		models.UserRoleOrganization: allowOwner,
		models.UserRoleSuperAdmin:   allowOwner,
	},
	ClassManaged: {
		Anonymous:                   deny401,
		models.UserRoleUser:         deny403,
		models.UserRoleOrganization: allowOwner,
		models.UserRoleSuperAdmin:   allowAdmin,
	},
	ClassAdminOnly: {
		Anonymous:                   deny401,
		models.UserRoleUser:         deny403,
		models.UserRoleOrganization: deny403,
		models.UserRoleSuperAdmin:   allowAdmin,
	},
}

// Decide возвращает область видимости или ошибку 401/403.
// Неизвестная роль (или класс) всегда отклоняется с 403.
func Decide(role models.UserRole, class RouteClass) (Scope, error) {
	row, ok := table[class]
	if !ok {
		return "", ErrForbidden
	}
	d, ok := row[role]
	if !ok {
		return "", ErrForbidden
	}
	if d.err != nil {
		return "", d.err
	}
	return d.scope, nil
}

// Principal - вызывающий и его область видимости. Передается в сервисы явно.
type Principal struct {
	ID    string
	Role  models.UserRole
	Scope Scope
}

func (p Principal) IsAnonymous() bool {
	return p.ID == ""
}

func (p Principal) IsAdminScope() bool {
	return p.Scope == ScopeAdmin
}

// OwnerFilter возвращает ID владельца для ограничения выборки, или "" если ограничения нет
func (p Principal) OwnerFilter() string {
	if p.Scope == ScopeOwner {
		return p.ID
	}
	return ""
}

// Owned сужает административную область до собственных записей
func (p Principal) Owned() Principal {
	if p.Scope == ScopeAdmin {
		p.Scope = ScopeOwner
	}
	return p
}

// CanMutate - публичная область только для чтения
func (p Principal) CanMutate() bool {
	return p.Scope == ScopeOwner || p.Scope == ScopeAdmin
}
