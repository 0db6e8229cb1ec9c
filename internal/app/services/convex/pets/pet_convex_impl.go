package convex_pets

import (
	"context"
	"petgromee-web/internal/app/contracts"
	"petgromee-web/internal/pkg/constvars"
	dto "petgromee-web/internal/pkg/convex_dto"
	"petgromee-web/internal/pkg/convexapi"
	"sync"

	"go.uber.org/zap"
)

var (
	petConvexClientInstance contracts.PetConvexClient
	oncePetConvexClient     sync.Once
)

type petConvexClient struct {
	Caller contracts.ConvexCaller
	Log    *zap.Logger
}

func NewPetConvexClient(caller contracts.ConvexCaller, logger *zap.Logger) contracts.PetConvexClient {
	oncePetConvexClient.Do(func() {
		petConvexClientInstance = &petConvexClient{
			Caller: caller,
			Log:    logger,
		}
	})
	return petConvexClientInstance
}

func (c *petConvexClient) CreatePet(ctx context.Context, request *dto.CreatePetArgs) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("petConvexClient.CreatePet called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCustomerIDKey, request.CustomerID),
	)

	petID, err := convexapi.Mutate(ctx, c.Caller, convexapi.Pets.CreatePet, *request)
	if err != nil {
		c.Log.Error("petConvexClient.CreatePet error calling pets.createPet",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	c.Log.Info("petConvexClient.CreatePet succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPetIDKey, petID),
	)
	return petID, nil
}

func (c *petConvexClient) DeletePet(ctx context.Context, petID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("petConvexClient.DeletePet called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPetIDKey, petID),
	)

	_, err := convexapi.Mutate(ctx, c.Caller, convexapi.Pets.DeletePet, dto.IDArgs{ID: petID})
	if err != nil {
		c.Log.Error("petConvexClient.DeletePet error calling pets.deletePet",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("petConvexClient.DeletePet succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPetIDKey, petID),
	)
	return nil
}
