package query

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// predicate - одно условие WHERE
type predicate struct {
	sql  string
	args []interface{}
}

// Plan - конъюнкция предикатов, порядок сортировки и страница.
// Apply и Paginate разделены, чтобы COUNT шел по тому же отфильтрованному набору без LIMIT.
type Plan struct {
	Page       Page
	predicates []predicate
	order      []clause.OrderByColumn
}

func newPlan(page Page) *Plan {
	return &Plan{Page: page}
}

// Where добавляет предикат (всегда через AND)
func (p *Plan) Where(sql string, args ...interface{}) *Plan {
	p.predicates = append(p.predicates, predicate{sql: sql, args: args})
	return p
}

func (p *Plan) orderBy(column string, desc bool) {
	p.order = append(p.order, clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc})
}

// Predicates возвращает количество условий (используется в тестах и логах)
func (p *Plan) Predicates() int {
	return len(p.predicates)
}

// Apply накладывает условия фильтра
func (p *Plan) Apply(db *gorm.DB) *gorm.DB {
	for _, pr := range p.predicates {
		db = db.Where(pr.sql, pr.args...)
	}
	return db
}

// Paginate накладывает ORDER BY и LIMIT/OFFSET
func (p *Plan) Paginate(db *gorm.DB) *gorm.DB {
	for _, o := range p.order {
		db = db.Order(o)
	}
	return db.Limit(p.Page.Limit).Offset(p.Page.Offset())
}

// likeEscaper экранирует метасимволы LIKE (в Postgres escape-символ по умолчанию - '\')
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Contains строит шаблон для ILIKE-поиска подстроки
func Contains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
