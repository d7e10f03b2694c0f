package models

type UserRole string
type Category string
type OpportunityType string
type ExperienceLevel string
type PaymentType string

const (
	UserRoleSuperAdmin   UserRole = "SUPER_ADMIN"
	UserRoleOrganization UserRole = "ORGANIZATION"
	UserRoleUser         UserRole = "USER"

	CategoryTech       Category = "TECH"
	CategoryBusiness   Category = "BUSINESS"
	CategoryDesign     Category = "DESIGN"
	CategoryEducation  Category = "EDUCATION"
	CategoryHealthcare Category = "HEALTHCARE"
	CategoryNonprofit  Category = "NONPROFIT"
	CategoryMarketing  Category = "MARKETING"
	CategoryOther      Category = "OTHER"

	OpportunityTypeJob        OpportunityType = "JOB"
	OpportunityTypeInternship OpportunityType = "INTERNSHIP"
	OpportunityTypeVolunteer  OpportunityType = "VOLUNTEER"
	OpportunityTypeFreelance  OpportunityType = "FREELANCE"
	OpportunityTypeProject    OpportunityType = "PROJECT"

	ExperienceLevelEntry  ExperienceLevel = "ENTRY"
	ExperienceLevelJunior ExperienceLevel = "JUNIOR"
	ExperienceLevelMid    ExperienceLevel = "MID"
	ExperienceLevelSenior ExperienceLevel = "SENIOR"
	ExperienceLevelExpert ExperienceLevel = "EXPERT"

	PaymentTypePaid    PaymentType = "PAID"
	PaymentTypeUnpaid  PaymentType = "UNPAID"
	PaymentTypeStipend PaymentType = "STIPEND"
)

var (
	UserRoles        = []UserRole{UserRoleSuperAdmin, UserRoleOrganization, UserRoleUser}
	Categories       = []Category{CategoryTech, CategoryBusiness, CategoryDesign, CategoryEducation, CategoryHealthcare, CategoryNonprofit, CategoryMarketing, CategoryOther}
	OpportunityTypes = []OpportunityType{OpportunityTypeJob, OpportunityTypeInternship, OpportunityTypeVolunteer, OpportunityTypeFreelance, OpportunityTypeProject}
	ExperienceLevels = []ExperienceLevel{ExperienceLevelEntry, ExperienceLevelJunior, ExperienceLevelMid, ExperienceLevelSenior, ExperienceLevelExpert}
	PaymentTypes     = []PaymentType{PaymentTypePaid, PaymentTypeUnpaid, PaymentTypeStipend}
)

func contains[T ~string](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func (r UserRole) IsValid() bool        { return contains(UserRoles, r) }
func (c Category) IsValid() bool        { return contains(Categories, c) }
func (t OpportunityType) IsValid() bool { return contains(OpportunityTypes, t) }
func (l ExperienceLevel) IsValid() bool { return contains(ExperienceLevels, l) }
func (p PaymentType) IsValid() bool     { return contains(PaymentTypes, p) }

// EnumValues возвращает допустимые значения в виде строк (для сообщений об ошибках)
func EnumValues[T ~string](set []T) []string {
	out := make([]string, len(set))
	for i, v := range set {
		out[i] = string(v)
	}
	return out
}
