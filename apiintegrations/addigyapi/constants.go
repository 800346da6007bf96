package addigyapi

// Addigy hosts. The public REST API lives under APIURL/api; the internal web-app endpoints are spread
// across the three app hosts. File uploads go through the file manager.
const (
	APIName                 = "addigy"
	APIURL                  = "https://prod.addigy.com"     // sign-in and legacy internal endpoints
	AppURL                  = "https://app.addigy.com"      // impersonation and v2 MDM endpoints
	AppProdURL              = "https://app-prod.addigy.com" // payload submission and account endpoints
	FileManagerURL          = "https://file-manager-prod.addigy.com"
	DefaultPublicAPIBaseURL = APIURL + "/api"
	ClientIDHeader          = "client-id"
	ClientSecretHeader      = "client-secret"
	AuthMethodDescriptor    = "client-id/client-secret"
)
