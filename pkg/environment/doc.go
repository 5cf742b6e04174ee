// Package environment names the deployment environment (development,
// staging, production) and carries it through context.Context and into
// structured logs.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	ctx = environment.WithContext(ctx, env)
//	if environment.IsProduction(ctx) {
//	    // production-only behaviour
//	}
//
// LoggerExtractor plugs the stored value into a logger built by package
// logger, so every record logged with that context gets an "env" attribute.
package environment
