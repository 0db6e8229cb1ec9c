package convex_appointments

import (
	"context"
	"errors"
	"petgromee-web/internal/app/contracts"
	"petgromee-web/internal/pkg/constvars"
	dto "petgromee-web/internal/pkg/convex_dto"
	"petgromee-web/internal/pkg/convexapi"
	"petgromee-web/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

var (
	appointmentConvexClientInstance contracts.AppointmentConvexClient
	onceAppointmentConvexClient     sync.Once
)

type appointmentConvexClient struct {
	Caller contracts.ConvexCaller
	Log    *zap.Logger
}

func NewAppointmentConvexClient(caller contracts.ConvexCaller, logger *zap.Logger) contracts.AppointmentConvexClient {
	onceAppointmentConvexClient.Do(func() {
		appointmentConvexClientInstance = &appointmentConvexClient{
			Caller: caller,
			Log:    logger,
		}
	})
	return appointmentConvexClientInstance
}

func (c *appointmentConvexClient) CreateAppointment(ctx context.Context, request *dto.CreateAppointmentArgs) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentConvexClient.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPetIDKey, request.PetID),
		zap.String(constvars.LoggingStartTimeKey, request.StartTime),
		zap.String(constvars.LoggingEndTimeKey, request.EndTime),
	)

	appointmentID, err := convexapi.Mutate(ctx, c.Caller, convexapi.Appointments.CreateAppointment, *request)
	if err != nil {
		c.Log.Error("appointmentConvexClient.CreateAppointment error calling appointments.createAppointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	c.Log.Info("appointmentConvexClient.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return appointmentID, nil
}

func (c *appointmentConvexClient) DeleteAppointment(ctx context.Context, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentConvexClient.DeleteAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	_, err := convexapi.Mutate(ctx, c.Caller, convexapi.Appointments.DeleteAppointment, dto.IDArgs{ID: appointmentID})
	if err != nil {
		c.Log.Error("appointmentConvexClient.DeleteAppointment error calling appointments.deleteAppointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("appointmentConvexClient.DeleteAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

// FindDetails returns ErrAppointmentNotFound when the backend has no such appointment.
func (c *appointmentConvexClient) FindDetails(ctx context.Context, appointmentID string) (*dto.AppointmentDetails, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentConvexClient.FindDetails called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	details, err := convexapi.Query(ctx, c.Caller, convexapi.Appointments.GetAppointmentDetails, dto.IDArgs{ID: appointmentID})
	if err != nil {
		c.Log.Error("appointmentConvexClient.FindDetails error calling appointments.getAppointmentDetails",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if details == nil {
		err := exceptions.ErrAppointmentNotFound(errors.New("appointment not found"), appointmentID)
		c.Log.Error("appointmentConvexClient.FindDetails appointment not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		)
		return nil, err
	}

	c.Log.Info("appointmentConvexClient.FindDetails succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, details.ID),
	)
	return details, nil
}
