// Package firestore contains the concrete implementation of the persistence
// layer on top of Google Cloud Firestore, the document store collaborator.
package firestore

import (
	"context"
	"log/slog"

	"kuliner/config"

	fs "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// ClientParams holds dependencies for the Firestore client, injected by Fx.
type ClientParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New initializes the Firestore client through the Firebase app bootstrap.
// The client is closed on shutdown via the Fx lifecycle.
func New(params ClientParams) (*fs.Client, error) {
	var opts []option.ClientOption
	if path := params.Config.Firebase.CredentialsPath; path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{
		ProjectID: params.Config.Firebase.ProjectID,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize firebase app")
	}

	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize firestore client")
	}

	params.Logger.Info("Firestore client initialized",
		slog.String("projectID", params.Config.Firebase.ProjectID),
	)

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
