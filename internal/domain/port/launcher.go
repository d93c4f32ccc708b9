package port

// AppLauncher starts external applications for the operator.
// Launch is fire-and-forget: it neither waits for the process nor reports
// whether it started.
type AppLauncher interface {
	Launch(app string)
}
