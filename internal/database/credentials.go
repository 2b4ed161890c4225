package database

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"seller-dashboard-api/internal/config"

	firebase "firebase.google.com/go/v4"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const serviceAccountType = "service_account"

// Credentials resolves the service-account JSON. The inline JSON variable wins,
// then the split FIREBASE_* fields, then the credentials file.
// The returned source is safe to log; the bytes are not.
func Credentials(cnf config.Firebase) (creds []byte, source string, err error) {
	switch {
	case cnf.CredentialsJSON != "":
		creds, source = []byte(cnf.CredentialsJSON), "FIREBASE_CREDENTIALS_JSON"
	case cnf.PrivateKey != "":
		creds, err = json.Marshal(cnf.ServiceAccount)
		if err != nil {
			return nil, "", fmt.Errorf("firebase credentials: %w", err)
		}
		source = "FIREBASE_* variables"
	default:
		creds, err = os.ReadFile(cnf.CredentialsFile)
		if err != nil {
			return nil, "", fmt.Errorf("firebase credentials: read %s: %w", cnf.CredentialsFile, err)
		}
		source = cnf.CredentialsFile
	}

	if err := checkServiceAccount(creds); err != nil {
		return nil, "", fmt.Errorf("firebase credentials from %s: %w", source, err)
	}

	return creds, source, nil
}

// checkServiceAccount rejects obviously broken credentials before the SDK sees them.
// Errors must not quote the input.
func checkServiceAccount(creds []byte) error {
	var sa config.ServiceAccount
	if err := json.Unmarshal(creds, &sa); err != nil {
		return fmt.Errorf("malformed service account json")
	}

	if sa.Type != serviceAccountType {
		return fmt.Errorf("unexpected credentials type %q", sa.Type)
	}

	missing := []string{}
	if sa.ProjectId == "" {
		missing = append(missing, "project_id")
	}
	if sa.PrivateKey == "" {
		missing = append(missing, "private_key")
	}
	if sa.ClientEmail == "" {
		missing = append(missing, "client_email")
	}
	if len(missing) > 0 {
		return fmt.Errorf("service account is missing %v", missing)
	}

	return nil
}

// NewFirestoreClient builds the Firebase app and the single Firestore client the
// process shares.
func NewFirestoreClient(ctx context.Context, cnf config.Firebase) (FirestoreClient, error) {
	creds, source, err := Credentials(cnf)
	if err != nil {
		return FirestoreClient{}, err
	}
	log.Info().Str("source", source).Msg("loading firebase credentials")

	var appConfig *firebase.Config
	if cnf.Project != "" {
		appConfig = &firebase.Config{ProjectID: cnf.Project}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsJSON(creds))
	if err != nil {
		return FirestoreClient{}, fmt.Errorf("firebase app: %w", err)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return FirestoreClient{}, fmt.Errorf("firestore client: %w", err)
	}

	return New(firestoreClient, cnf.ReadTimeout), nil
}
