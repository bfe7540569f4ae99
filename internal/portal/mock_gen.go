// internal/portal/mock_gen.go
package portal

//go:generate mockgen -source=./portal.go -destination=../mocks/mock_portal.go -package=mocks Portal
