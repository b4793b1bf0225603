package domain

// DefaultArchiveName is the archive name of the built-in flow pack.
const DefaultArchiveName = "PasswordlessFlowPackForCustomers"

const flowsBaseURL = "https://raw.githubusercontent.com/pingone-davinci/flows/main/Solutions/CIAMPasswordless/"

// Links shown alongside the built-in flow pack.
const (
	// DocumentationURL explains how to import the flows.
	DocumentationURL = "https://docs.pingidentity.com/r/en-us/pingone_for_customers_passwordless/" +
		"ciam_passwordless_configuring_flows_in_davinci"

	// MarketplaceURL is the integration marketplace listing for the pack.
	MarketplaceURL = "https://support.pingidentity.com/s/marketplace-integration/" +
		"a7iDo0000010xwlIAA/passwordless-flow-pack-customer-identities"
)

// DefaultDescriptors returns the descriptors of the built-in CIAM
// Passwordless flow pack.
func DefaultDescriptors() []Descriptor {
	return []Descriptor{
		{
			Name: "OOTB_Passwordless - Registration, Authentication, & Account Recovery - Main Flow",
			Locator: flowsBaseURL +
				"OOTB_Passwordless%20-%20Registration%2C%20Authentication%2C%20%26%20Account%20Recovery%20-%20Main%20Flow.json",
		},
		{
			Name:    "OOTB_Device Management - Main Flow",
			Locator: flowsBaseURL + "OOTB_Device%20Management%20-%20Main%20Flow.json",
		},
		{
			Name:    "OOTB_Password Reset - Main Flow",
			Locator: flowsBaseURL + "OOTB_Password%20Reset%20-%20Main%20Flow.json",
		},
		{
			Name:    "OOTB_Basic Profile Management",
			Locator: flowsBaseURL + "OOTB_Basic%20Profile%20Management.json",
		},
	}
}

// DefaultManifest returns the built-in CIAM Passwordless flow pack manifest.
func DefaultManifest() *Manifest {
	m, err := NewManifest(DefaultArchiveName, DefaultDescriptors())
	if err != nil {
		// The built-in descriptors are static and always valid.
		panic(err)
	}
	return m
}
