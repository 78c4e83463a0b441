package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/zerobuild-ai/zerobuild-backend/config"
)

// NewFirebaseAuth builds the Firebase auth client that verifies ID tokens
// for AUTH_MODE=firebase.
func NewFirebaseAuth(ctx context.Context, cfg *config.FirebaseConfig) (*auth.Client, error) {
	appCfg, opts, err := firebaseSettings(cfg)
	if err != nil {
		return nil, err
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth client: %w", err)
	}
	return client, nil
}

// firebaseSettings picks the app config and client options. The SDK reads
// FIREBASE_AUTH_EMULATOR_HOST from the environment itself; against the
// emulator only the project id matters.
func firebaseSettings(cfg *config.FirebaseConfig) (*firebase.Config, []option.ClientOption, error) {
	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	switch {
	case cfg.EmulatorHost != "":
		if appCfg == nil {
			return nil, nil, fmt.Errorf("firebase emulator needs a project id")
		}
		return appCfg, []option.ClientOption{option.WithoutAuthentication()}, nil
	case cfg.CredentialsPath != "":
		return appCfg, []option.ClientOption{option.WithCredentialsFile(cfg.CredentialsPath)}, nil
	}
	return nil, nil, fmt.Errorf("firebase needs FIREBASE_CREDENTIALS_PATH or an emulator host")
}
