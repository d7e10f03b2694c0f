package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	HealthHandler       *HealthHandler
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	OrganizationHandler *OrganizationHandler
	OpportunityHandler  *OpportunityHandler
	SkillHandler        *SkillHandler
}
