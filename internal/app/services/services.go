// Package services holds the business rules of the API.
//
// Services defined in this package:
//   - AuthService: registration, API tokens, JWT login and refresh
//   - UserService: the current user's profile
//   - OrganizationService, DegreeService, LocationService, SpotlightService: catalog data
//   - JobService: job writes with name-based relation resolution and index updates
//   - SearchService: full-text job search and title suggestions
//
// Services depend on the store interfaces in stores.go, implemented by the
// repositories package and mocked in internal/mocks.
package services
