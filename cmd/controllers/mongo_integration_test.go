//go:build integration
// +build integration

package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"directory-service/internal/configs"
	"directory-service/internal/errs"
	"directory-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func startMongoContainer(ctx context.Context, t *testing.T) (testcontainers.Container, string) {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	return container, fmt.Sprintf("mongodb://%s:%s", host, port.Port())
}

func newIntegrationDB(ctx context.Context, t *testing.T) *MongoDB {
	t.Helper()

	container, uri := startMongoContainer(ctx, t)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	cfg := &configs.Config{MongoURI: uri, MongoDB: "directory_test", ConnectTimeout: 30 * time.Second}
	client, err := configs.ConnectDB(ctx, cfg)
	require.NoError(t, err)

	return NewMongoDB(client, cfg.MongoDB)
}

func TestIntegration_MongoRepository(t *testing.T) {
	ctx := context.Background()
	db := newIntegrationDB(ctx, t)
	defer db.Close(ctx)

	require.NoError(t, db.Ping(ctx))
	assert.Equal(t, "directory_test", db.Name())

	companies, err := db.ListAll(ctx, models.CompanyCollection)
	require.NoError(t, err)
	assert.Empty(t, companies)

	company := models.Record{"name": "Acme", "taxId": "123"}
	models.ResetEmployees(company)
	insertedID, err := db.InsertOne(ctx, models.CompanyCollection, company)
	require.NoError(t, err)
	companyID, ok := insertedID.(primitive.ObjectID)
	require.True(t, ok)

	other := models.Record{"name": "Globex", "taxId": "456"}
	models.ResetEmployees(other)
	_, err = db.InsertOne(ctx, models.CompanyCollection, other)
	require.NoError(t, err)

	userID := primitive.NewObjectID()
	matched, err := db.AppendToArrayField(ctx, models.CompanyCollection, companyID, models.EmployeesField, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	before, err := db.ListAll(ctx, models.CompanyCollection)
	require.NoError(t, err)

	matched, err = db.AppendToArrayField(ctx, models.CompanyCollection, primitive.NewObjectID(), models.EmployeesField, primitive.NewObjectID())
	require.NoError(t, err)
	assert.Equal(t, int64(0), matched)

	after, err := db.ListAll(ctx, models.CompanyCollection)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	require.Len(t, after, 2)
	for _, doc := range after {
		if doc["_id"] == companyID {
			assert.Equal(t, bson.A{userID}, doc[models.EmployeesField])
		} else {
			assert.Equal(t, bson.A{}, doc[models.EmployeesField])
		}
	}
}

func TestIntegration_DuplicateIDRejected(t *testing.T) {
	ctx := context.Background()
	db := newIntegrationDB(ctx, t)
	defer db.Close(ctx)

	id := primitive.NewObjectID()
	_, err := db.InsertOne(ctx, models.UserCollection, models.Record{"_id": id, "name": "Ann", "age": 1, "weight": 2})
	require.NoError(t, err)

	_, err = db.InsertOne(ctx, models.UserCollection, models.Record{"_id": id, "name": "Ann", "age": 1, "weight": 2})
	assert.True(t, errors.Is(err, errs.ErrWriteRejected), "got %v", err)
}

func TestIntegration_ClosedStoreIsUnavailable(t *testing.T) {
	ctx := context.Background()
	db := newIntegrationDB(ctx, t)
	require.NoError(t, db.Close(ctx))

	_, err := db.ListAll(ctx, models.UserCollection)
	assert.True(t, errors.Is(err, errs.ErrStoreUnavailable), "got %v", err)
}

func TestIntegration_CreateCompanyThenAddEmployee(t *testing.T) {
	ctx := context.Background()
	db := newIntegrationDB(ctx, t)
	defer db.Close(ctx)

	router := companyRouter(New(db, false, 5*time.Second))

	resp := perform(router, http.MethodPost, "/company", `{"name":"Acme","taxId":"123","employees":["ignored"]}`)
	require.Equal(t, http.StatusOK, resp.Code)

	companies, err := db.ListAll(ctx, models.CompanyCollection)
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, bson.A{}, companies[0][models.EmployeesField])
	companyID := companies[0]["_id"].(primitive.ObjectID)

	userID := primitive.NewObjectID()
	body := fmt.Sprintf(`{"company_id":%q,"user_id":%q}`, companyID.Hex(), userID.Hex())
	resp = perform(router, http.MethodPost, "/company/employee", body)
	require.Equal(t, http.StatusOK, resp.Code)

	companies, err = db.ListAll(ctx, models.CompanyCollection)
	require.NoError(t, err)
	assert.Equal(t, bson.A{userID}, companies[0][models.EmployeesField])
}
