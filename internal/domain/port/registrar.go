package port

// StepRegistrar binds step expressions to handler functions by role.
// *godog.ScenarioContext satisfies it.
type StepRegistrar interface {
	Given(expr, stepFunc interface{})
	When(expr, stepFunc interface{})
	Then(expr, stepFunc interface{})
}
