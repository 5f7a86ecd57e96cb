package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"bizease/internal/domain/entity"
	"bizease/internal/domain/repository"
	"bizease/internal/domain/service"
	"bizease/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	day                  = 24 * time.Hour
	seedNumberAttempts   = 5
	seedDocumentFileRef  = "application_documents/dummy.pdf"
	seedRejectionReason  = "Incomplete documentation"
	defaultSeedBusinesses = 5
)

var (
	seedBusinessTypes = []entity.BusinessType{
		entity.BusinessTypeRetail,
		entity.BusinessTypeManufacturing,
		entity.BusinessTypeService,
		entity.BusinessTypeIT,
		entity.BusinessTypeHospitality,
	}
	seedStatuses = []entity.ApplicationStatus{
		entity.StatusDraft,
		entity.StatusSubmitted,
		entity.StatusUnderReview,
		entity.StatusApproved,
		entity.StatusRejected,
	}
	seedDocumentTypes = []entity.DocumentType{
		entity.DocumentTypePAN,
		entity.DocumentTypeAddress,
		entity.DocumentTypeRegistration,
		entity.DocumentTypeID,
	}
	seedComplianceTitles = []string{
		"GST Return Filing",
		"TDS Payment",
		"Professional Tax Payment",
		"Annual Business Return",
		"EPF Payment",
	}
)

// SeedServiceParams holds dependencies for seedService, injected by Fx.
type SeedServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	ApprovalTypeRepo repository.ApprovalTypeRepository
	SchemeRepo       repository.SchemeRepository
	NewsRepo         repository.NewsRepository
	Hasher           service.PasswordHasher
	Logger           *slog.Logger
}

type seedService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	approvalTypeRepo repository.ApprovalTypeRepository
	schemeRepo       repository.SchemeRepository
	newsRepo         repository.NewsRepository
	hasher           service.PasswordHasher
	logger           *slog.Logger
	now              clock
	rnd              *rand.Rand
}

func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	seed := uint64(time.Now().UnixNano())

	return &seedService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		approvalTypeRepo: params.ApprovalTypeRepo,
		schemeRepo:       params.SchemeRepo,
		newsRepo:         params.NewsRepo,
		hasher:           params.Hasher,
		logger:           params.Logger,
		now:              utcNow,
		rnd:              rand.New(rand.NewPCG(seed, seed>>1)),
	}
}

func (srv *seedService) Seed(ctx context.Context, opts usecase.SeedOptions) (*usecase.SeedSummary, error) {
	summary := &usecase.SeedSummary{}
	now := srv.now()

	if _, _, err := srv.ensureUser(ctx, srv.userRepo, opts.AdminEmail, "Administrator", opts.AdminPassword, entity.RoleAdmin, summary); err != nil {
		return nil, err
	}

	approvalTypes, err := srv.seedCatalog(ctx, now, summary)
	if err != nil {
		return nil, err
	}

	count := opts.BusinessUsers
	if count <= 0 {
		count = defaultSeedBusinesses
	}
	for i := 1; i <= count; i++ {
		err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			return srv.seedBusiness(ctx, factory, i, opts.BusinessPassword, approvalTypes, now, summary)
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to seed business %d", i)
		}
	}

	srv.logger.Info("Seed finished",
		slog.Int("users", summary.Users),
		slog.Int("applications", summary.Applications),
		slog.Int("compliances", summary.Compliances),
	)

	return summary, nil
}

// ensureUser returns the user with email, creating it when missing. created reports which happened.
func (srv *seedService) ensureUser(ctx context.Context, repo repository.UserRepository, email, name, password string, role entity.Role, summary *usecase.SeedSummary) (*entity.User, bool, error) {
	user, err := repo.FindByEmail(ctx, email)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, errors.Wrapf(err, "failed to look up %s", email)
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to hash seed password")
	}
	user = &entity.User{Email: email, Name: name, PasswordHash: hash, Role: role}
	if err := repo.Create(ctx, user); err != nil {
		return nil, false, errors.Wrapf(err, "failed to create %s", email)
	}
	summary.Users++

	return user, true, nil
}

// seedCatalog creates the reference data once. A catalog that already has approval types is left alone.
func (srv *seedService) seedCatalog(ctx context.Context, now time.Time, summary *usecase.SeedSummary) ([]*entity.ApprovalType, error) {
	existing, err := srv.approvalTypeRepo.List(ctx, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list approval types")
	}
	if len(existing) > 0 {
		return existing, nil
	}

	today := entity.Today(now)
	endIn := func(days int) *time.Time {
		t := today.AddDate(0, 0, days)

		return &t
	}
	schemes := []*entity.GovernmentScheme{
		{
			Name:               "Delhi Startup Policy",
			Description:        "Financial and infrastructural support for startups in Delhi.",
			Eligibility:        "Startups registered in Delhi with less than 5 years of operation.",
			Benefits:           "Up to ₹10 lakhs funding and incubation support.",
			ApplicationProcess: "Online application with business plan submission.",
			WebsiteLink:        "https://delhi.gov.in/startup",
			StartDate:          today.AddDate(0, 0, -180),
			EndDate:            endIn(180),
		},
		{
			Name:               "MSME Loan Subsidy",
			Description:        "Interest subsidy on loans for MSMEs.",
			Eligibility:        "Registered MSMEs with turnover less than ₹50 crores.",
			Benefits:           "5% interest subsidy on term loans.",
			ApplicationProcess: "Apply through portal with required documents.",
			WebsiteLink:        "https://delhi.gov.in/msme",
			StartDate:          today.AddDate(0, 0, -90),
		},
		{
			Name:               "Green Business Incentive",
			Description:        "Incentives for eco-friendly business practices.",
			Eligibility:        "Businesses implementing green initiatives.",
			Benefits:           "Tax rebates and certification.",
			ApplicationProcess: "Submit application with proof of green initiatives.",
			WebsiteLink:        "https://delhi.gov.in/green",
			StartDate:          today.AddDate(0, 0, -60),
			EndDate:            endIn(300),
		},
	}
	for _, s := range schemes {
		s.IsActive = true
		if err := srv.schemeRepo.Create(ctx, s); err != nil {
			return nil, errors.Wrapf(err, "failed to create scheme %q", s.Name)
		}
		summary.Schemes++
	}

	approvalTypes := []*entity.ApprovalType{
		{
			Name:              "Trade License",
			Description:       "License required for all businesses operating in Delhi.",
			Department:        "Municipal Corporation of Delhi",
			ProcessingTime:    "7-10 working days",
			Fees:              "2000.00",
			RequiredDocuments: "1. Address proof\n2. ID proof\n3. Business registration certificate",
		},
		{
			Name:              "GST Registration",
			Description:       "Mandatory for businesses with turnover above ₹20 lakhs.",
			Department:        "Department of Trade and Taxes",
			ProcessingTime:    "3-5 working days",
			Fees:              "0.00",
			RequiredDocuments: "1. PAN\n2. Address proof\n3. Bank details\n4. Business registration",
		},
		{
			Name:              "FSSAI License",
			Description:       "Required for food-related businesses.",
			Department:        "Food Safety and Standards Authority",
			ProcessingTime:    "14-21 working days",
			Fees:              "5000.00",
			RequiredDocuments: "1. Food safety plan\n2. Layout plan\n3. List of food products",
		},
	}
	for _, at := range approvalTypes {
		at.IsActive = true
		if err := srv.approvalTypeRepo.Create(ctx, at); err != nil {
			return nil, errors.Wrapf(err, "failed to create approval type %q", at.Name)
		}
		summary.ApprovalTypes++
	}

	news := []*entity.NewsArticle{
		{
			Title:       "Delhi Government Launches New Business Portal",
			Content:     "The Delhi government has launched a new portal to streamline business registration and approval processes. The portal aims to reduce the time and effort required for businesses to obtain various licenses and approvals.",
			PublishDate: now.Add(-2 * day),
			Source:      "Delhi Government",
			SourceURL:   "https://delhi.gov.in/news",
		},
		{
			Title:       "Ease of Doing Business Rankings Improve",
			Content:     "Delhi has moved up 5 positions in the national Ease of Doing Business rankings. The improvement is attributed to several reforms implemented by the government.",
			PublishDate: now.Add(-5 * day),
			Source:      "Business Today",
			SourceURL:   "https://businesstoday.in",
		},
		{
			Title:       "New Subsidy Scheme for Small Businesses",
			Content:     "The government has announced a new subsidy scheme for small businesses affected by the pandemic. The scheme offers financial assistance and tax benefits.",
			PublishDate: now.Add(-10 * day),
			Source:      "Economic Times",
			SourceURL:   "https://economictimes.indiatimes.com",
		},
	}
	for _, n := range news {
		n.IsActive = true
		if err := srv.newsRepo.Create(ctx, n); err != nil {
			return nil, errors.Wrapf(err, "failed to create news %q", n.Title)
		}
		summary.News++
	}

	return approvalTypes, nil
}

// seedBusiness creates business user i with a profile, applications and compliances.
// An existing user is skipped entirely.
func (srv *seedService) seedBusiness(ctx context.Context, factory repository.RepositoryFactory, i int, password string, approvalTypes []*entity.ApprovalType, now time.Time, summary *usecase.SeedSummary) error {
	email := fmt.Sprintf("business%d@example.com", i)
	user, created, err := srv.ensureUser(ctx, factory.NewUserRepository(), email, fmt.Sprintf("Business Owner %d", i), password, entity.RoleBusiness, summary)
	if err != nil || !created {
		return err
	}

	profile := &entity.BusinessProfile{
		UserID:             user.ID,
		BusinessName:       fmt.Sprintf("Sample Business %d", i),
		BusinessType:       seedBusinessTypes[srv.rnd.IntN(len(seedBusinessTypes))],
		RegistrationNumber: fmt.Sprintf("REG%03d", i),
		Address:            fmt.Sprintf("%d00, Sample Street, Delhi", i),
		ContactPerson:      fmt.Sprintf("Contact Person %d", i),
		ContactNumber:      fmt.Sprintf("987654321%d", i%10),
		Email:              email,
		DateEstablished:    entity.Today(now).AddDate(0, 0, -(365 + srv.rnd.IntN(365*4))),
	}
	if err := factory.NewBusinessRepository().Create(ctx, profile); err != nil {
		return errors.Wrap(err, "failed to create profile")
	}
	summary.Profiles++

	if len(approvalTypes) > 0 {
		for range 1 + srv.rnd.IntN(4) {
			if err := srv.seedApplication(ctx, factory, profile, approvalTypes, now, summary); err != nil {
				return err
			}
		}
	}

	complianceRepo := factory.NewComplianceRepository()
	for range 2 + srv.rnd.IntN(4) {
		due := entity.Today(now).AddDate(0, 0, 1+srv.rnd.IntN(60))
		c := &entity.Compliance{
			BusinessID:  profile.ID,
			Title:       seedComplianceTitles[srv.rnd.IntN(len(seedComplianceTitles))],
			Description: "Compliance requirement for " + profile.BusinessName,
			DueDate:     due,
		}
		if srv.rnd.IntN(2) == 0 {
			completed := entity.Today(now).AddDate(0, 0, -srv.rnd.IntN(10))
			c.IsCompleted = true
			c.CompletedDate = &completed
		}
		if err := complianceRepo.Create(ctx, c); err != nil {
			return errors.Wrap(err, "failed to create compliance")
		}
		summary.Compliances++
	}

	return nil
}

// unusedApplicationNumber probes for a free number before inserting.
// A failed insert would abort the surrounding transaction, so collisions are never retried on Create.
func (srv *seedService) unusedApplicationNumber(ctx context.Context, appRepo repository.ApplicationRepository) (string, error) {
	for range seedNumberAttempts {
		number, err := entity.NewApplicationNumber()
		if err != nil {
			return "", errors.Wrap(err, "failed to generate application number")
		}

		exists, err := appRepo.ExistsByNumber(ctx, number)
		if err != nil {
			return "", errors.Wrap(err, "failed to check application number")
		}
		if !exists {
			return number, nil
		}
	}

	return "", errors.New("no unused application number found")
}

// seedApplication creates one application whose dates agree with its status:
// drafts have no submission date, approval follows submission and never lies in the future.
func (srv *seedService) seedApplication(ctx context.Context, factory repository.RepositoryFactory, profile *entity.BusinessProfile, approvalTypes []*entity.ApprovalType, now time.Time, summary *usecase.SeedSummary) error {
	status := seedStatuses[srv.rnd.IntN(len(seedStatuses))]
	app := &entity.ApprovalApplication{
		BusinessID:     profile.ID,
		ApprovalTypeID: approvalTypes[srv.rnd.IntN(len(approvalTypes))].ID,
		Status:         status,
	}
	if status != entity.StatusDraft {
		daysAgo := 1 + srv.rnd.IntN(30)
		submitted := now.Add(-time.Duration(daysAgo) * day)
		app.SubmissionDate = &submitted
		if status == entity.StatusApproved {
			approved := submitted.Add(time.Duration(srv.rnd.IntN(daysAgo+1)) * day)
			app.ApprovalDate = &approved
		}
		if status == entity.StatusRejected {
			app.RejectionReason = seedRejectionReason
		}
	}

	appRepo := factory.NewApplicationRepository()
	number, err := srv.unusedApplicationNumber(ctx, appRepo)
	if err != nil {
		return err
	}
	app.ApplicationNumber = number
	if err := appRepo.Create(ctx, app); err != nil {
		return errors.Wrap(err, "failed to create application")
	}
	summary.Applications++

	if status == entity.StatusDraft || srv.rnd.Float64() < 0.3 {
		return nil
	}
	doc := &entity.ApplicationDocument{
		ApplicationID: app.ID,
		DocumentType:  seedDocumentTypes[srv.rnd.IntN(len(seedDocumentTypes))],
		FileRef:       seedDocumentFileRef,
		OriginalName:  "dummy.pdf",
		IsVerified:    srv.rnd.IntN(2) == 0,
		UploadedAt:    now,
	}
	if err := factory.NewDocumentRepository().Create(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to create document")
	}
	summary.Documents++

	return nil
}
