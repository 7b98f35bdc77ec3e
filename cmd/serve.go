// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/client-portal/internal/config"
	"github.com/canonical/client-portal/internal/db"
	"github.com/canonical/client-portal/internal/hydra"
	"github.com/canonical/client-portal/internal/identity"
	"github.com/canonical/client-portal/internal/kratos"
	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/mail"
	"github.com/canonical/client-portal/internal/monitoring/prometheus"
	"github.com/canonical/client-portal/internal/provider"
	"github.com/canonical/client-portal/internal/session"
	"github.com/canonical/client-portal/internal/storage"
	"github.com/canonical/client-portal/internal/tracing"
	"github.com/canonical/client-portal/pkg/admin"
	"github.com/canonical/client-portal/pkg/authentication"
	"github.com/canonical/client-portal/pkg/onboarding"
	"github.com/canonical/client-portal/pkg/status"
	"github.com/canonical/client-portal/pkg/tenant"
	"github.com/canonical/client-portal/pkg/web"
	"github.com/canonical/client-portal/pkg/webhooks"
)

const callbackPath = "/auth/callback"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("client-portal", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbClient, err := db.NewDBClient(
		db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()

	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	publicURL := strings.TrimRight(specs.PublicURL, "/")
	callbackURL := publicURL + callbackPath

	kratosClient := kratos.NewClient(specs.KratosAdminURL, tracer, monitor, logger)
	hydraClient := hydra.NewClient(
		hydra.Config{
			AdminURL:     specs.HydraAdminURL,
			TokenURL:     specs.HydraTokenURL,
			ClientID:     specs.HydraClientID,
			ClientSecret: specs.HydraClientSecret,
			RedirectURL:  callbackURL,
		},
		tracer,
		monitor,
		logger,
	)

	var mailer mail.MailerInterface
	if specs.SendgridAPIKey != "" {
		mailer = mail.NewSendgridMailer(specs.SendgridAPIKey, specs.MailFromName, specs.MailFromAddress, tracer, monitor, logger)
	} else {
		logger.Info("SENDGRID_API_KEY not set, links will only be logged")
		mailer = mail.NewNoopMailer(logger)
	}

	idp := provider.NewProvider(kratosClient, hydraClient, s, mailer, callbackURL, specs.OneTimeTokenLifetime, tracer, monitor, logger)

	// a nil *JWTVerifier must not reach the flow router as a non-nil interface
	var linkVerifier onboarding.TokenVerifierInterface
	var bearerVerifier authentication.TokenVerifierInterface = authentication.NewNoopVerifier()

	if specs.JWTIssuer != "" {
		v, err := authentication.NewJWTAuthenticator(
			context.Background(),
			specs.JWTIssuer,
			specs.JWKSURL,
			specs.JWTAllowedSubjects,
			specs.JWTRequiredScope,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up JWT verification: %w", err)
		}

		linkVerifier = v
		bearerVerifier = v
	} else {
		logger.Info("JWT_ISSUER not set, bearer authentication is disabled")
	}

	flow := onboarding.NewRouter(
		onboarding.NewSessionEstablisher(idp, tracer, monitor, logger),
		onboarding.NewCredentialSetter(idp, tracer, monitor, logger),
		onboarding.NewTenantLinker(s, tracer, monitor, logger),
		idp,
		linkVerifier,
		callbackURL,
		tracer,
		monitor,
		logger,
	)

	sessions := session.NewCookieStore(specs.SessionSecret, specs.SessionMaxAge, strings.HasPrefix(publicURL, "https://"), logger)
	identityMiddleware := identity.NewMiddleware(specs.TrustIdentityHeader, tracer, monitor, logger)
	authn := authentication.NewMiddleware(bearerVerifier, s, tracer, monitor, logger)

	onboardingAPI := onboarding.NewAPI(flow, sessions, tracer, logger)

	router := web.NewRouter(
		[]web.API{
			onboardingAPI,
			tenant.NewAPI(tenant.NewService(s, kratosClient, tracer, monitor, logger), authn, logger),
			admin.NewAPI(admin.NewService(s, kratosClient, idp, specs.InvitationLifetime, tracer, monitor, logger), authn, logger),
			webhooks.NewAPI(webhooks.NewService(s, kratosClient, tracer, monitor, logger), logger),
		},
		web.Middlewares{
			Session:      sessions.Middleware,
			Identity:     identityMiddleware.HTTPMiddleware,
			Capabilities: authn.Authenticate(),
		},
		map[string]status.PingerInterface{
			"database": dbClient,
			"kratos":   kratosClient,
		},
		dbClient,
		specs.CORSAllowedOrigins,
		tracer,
		monitor,
		logger,
	)

	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	onboardingAPI.Wait()

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
