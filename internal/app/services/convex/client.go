package convex

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"petgromee-web/internal/app/contracts"
	"petgromee-web/internal/pkg/constvars"
	"petgromee-web/internal/pkg/convexapi"
	"petgromee-web/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

var (
	convexClientInstance contracts.ConvexCaller
	onceConvexClient     sync.Once
)

type functionRequest struct {
	Path   string      `json:"path"`
	Args   interface{} `json:"args"`
	Format string      `json:"format"`
}

type functionResponse struct {
	Status       string          `json:"status"`
	Value        json.RawMessage `json:"value"`
	ErrorMessage string          `json:"errorMessage"`
	ErrorData    json.RawMessage `json:"errorData,omitempty"`
	LogLines     []string        `json:"logLines,omitempty"`
}

type convexClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewConvexClient(baseUrl string, logger *zap.Logger) contracts.ConvexCaller {
	onceConvexClient.Do(func() {
		convexClientInstance = newConvexClient(baseUrl, &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}, logger)
	})
	return convexClientInstance
}

func newConvexClient(baseUrl string, httpClient *http.Client, logger *zap.Logger) *convexClient {
	return &convexClient{
		BaseUrl:    baseUrl,
		HTTPClient: httpClient,
		Log:        logger,
	}
}

// Call invokes one backend function over the HTTP function API. The caller's
// context bounds the request; there are no retries.
func (c *convexClient) Call(ctx context.Context, kind convexapi.Kind, path string, args interface{}, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	url := fmt.Sprintf(constvars.ConvexFunctionURLFormat, c.BaseUrl, kind)
	c.Log.Info("convexClient.Call called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConvexKindKey, string(kind)),
		zap.String(constvars.LoggingConvexPathKey, path),
	)

	if args == nil {
		args = struct{}{}
	}
	requestJSON, err := json.Marshal(functionRequest{
		Path:   path,
		Args:   args,
		Format: constvars.ConvexResponseFormat,
	})
	if err != nil {
		c.Log.Error("convexClient.Call error marshaling request to JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("convexClient.Call error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("convexClient.Call error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConvexURLKey, url),
			zap.Error(err),
		)
		if ctx.Err() == context.DeadlineExceeded {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("convexClient.Call error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrDecodeResponse(err)
	}

	var result functionResponse
	decodeErr := json.Unmarshal(bodyBytes, &result)

	if decodeErr == nil && result.Status == constvars.ConvexStatusError {
		functionErr := fmt.Errorf("%s", result.ErrorMessage)
		c.Log.Error("convexClient.Call function returned an error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConvexPathKey, path),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Strings(constvars.LoggingConvexLogLinesKey, result.LogLines),
			zap.Error(functionErr),
		)
		return exceptions.ErrConvexFunction(functionErr, path, result.ErrorMessage)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= constvars.StatusMultipleChoices {
		statusErr := fmt.Errorf("unexpected status code %d", resp.StatusCode)
		c.Log.Error("convexClient.Call unexpected HTTP status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConvexPathKey, path),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.ByteString(constvars.LoggingResponseKey, bodyBytes),
		)
		return exceptions.ErrConvexUnexpectedStatus(statusErr, resp.StatusCode, path)
	}

	if decodeErr != nil {
		c.Log.Error("convexClient.Call error decoding response envelope",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(decodeErr),
		)
		return exceptions.ErrDecodeResponse(decodeErr)
	}

	if result.Status != constvars.ConvexStatusSuccess {
		statusErr := fmt.Errorf("unknown response status %q", result.Status)
		c.Log.Error("convexClient.Call unknown response status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConvexPathKey, path),
			zap.Error(statusErr),
		)
		return exceptions.ErrDecodeResponse(statusErr)
	}

	if out != nil && len(result.Value) > 0 {
		if err := json.Unmarshal(result.Value, out); err != nil {
			c.Log.Error("convexClient.Call error decoding function value",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingConvexPathKey, path),
				zap.Error(err),
			)
			return exceptions.ErrDecodeResponse(err)
		}
	}

	c.Log.Info("convexClient.Call succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConvexPathKey, path),
	)
	return nil
}
