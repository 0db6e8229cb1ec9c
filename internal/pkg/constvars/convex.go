package constvars

const (
	ConvexFunctionURLFormat = "%s/api/%s"
	ConvexResponseFormat    = "json"
	ConvexStatusSuccess     = "success"
	ConvexStatusError       = "error"
)
