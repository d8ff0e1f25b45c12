package assets

// Config holds configuration for resolving image references into URLs.
type Config struct {
	// Environment selects the URL scheme (local, hosted, storage).
	Environment string `mapstructure:"environment" default:"hosted"`
	// LocalHost is the replica origin used in the local environment.
	LocalHost string `mapstructure:"local_host" default:"http://127.0.0.1:4943"`
	// Canister is the asset handler canister serving images.
	Canister string `mapstructure:"canister" default:"frmde-4yaaa-aaaam-aenlq-cai"`
	// HostedDomain is the raw gateway domain for the hosted environment.
	HostedDomain string `mapstructure:"hosted_domain" default:"raw.icp0.io"`
	// PublicBaseURL is the public origin of the object storage (storage environment).
	PublicBaseURL string `mapstructure:"public_base_url" default:"http://localhost:9000"`
	// Bucket is the bucket media is uploaded to (storage environment).
	Bucket string `mapstructure:"bucket" default:"metabuild"`
	// MediaPrefix is the folder uploaded media is stored under.
	MediaPrefix string `mapstructure:"media_prefix" default:"media"`
	// Fallback is served when a reference is missing or unresolvable.
	Fallback string `mapstructure:"fallback" default:"/assets/images/business-model-1.png"`
}

const (
	EnvironmentLocal   = "local"
	EnvironmentHosted  = "hosted"
	EnvironmentStorage = "storage"
)

// DefaultFallback is the placeholder image shown for items without media.
const DefaultFallback = "/assets/images/business-model-1.png"
