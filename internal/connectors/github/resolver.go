package github

// ResolveWebURL converts a github:// locator to its github.com web URL.
// Locators that are not valid github:// locators resolve to an empty string.
func ResolveWebURL(locator string) string {
	loc, err := ParseLocator(locator)
	if err != nil {
		return ""
	}
	return loc.WebURL()
}
