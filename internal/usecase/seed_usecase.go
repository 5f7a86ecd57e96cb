package usecase

import "context"

// SeedOptions controls the demo data set.
type SeedOptions struct {
	AdminEmail       string
	AdminPassword    string
	BusinessUsers    int
	BusinessPassword string
}

// SeedSummary counts the records a seed run created.
type SeedSummary struct {
	Users         int
	Profiles      int
	ApprovalTypes int
	Schemes       int
	News          int
	Applications  int
	Documents     int
	Compliances   int
}

// SeedUsecase populates an empty portal with demo data. Users are matched by email,
// so a second run only adds what is missing.
type SeedUsecase interface {
	Seed(ctx context.Context, opts SeedOptions) (*SeedSummary, error)
}
