package services

import (
	"adsense_backend/internal/models"
	"adsense_backend/internal/repositories"
	"adsense_backend/internal/services/dto"
	"adsense_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AdService interface {
	Create(db *gorm.DB, companyID string, req *dto.CreateAdRequest) (*dto.AdResponse, error)
	ListForInfluencer(db *gorm.DB, influencerID string) ([]dto.AdResponse, error)
	ListForCompany(db *gorm.DB, companyID string) ([]dto.AdResponse, error)
	ListAccepted(db *gorm.DB, influencerID string) ([]dto.AdResponse, error)
	Accept(db *gorm.DB, influencerID, adID string) error
	Reject(db *gorm.DB, influencerID, adID string) error
	SubmitProof(db *gorm.DB, influencerID, adID string, req *dto.SubmitProofRequest) error
	Delete(db *gorm.DB, companyID, adID string) error
}

type AdServiceImpl struct {
	adRepo              repositories.AdRepository
	userRepo            repositories.UserRepository
	notificationService NotificationService
}

func NewAdService(
	adRepo repositories.AdRepository,
	userRepo repositories.UserRepository,
	notificationService NotificationService,
) AdService {
	return &AdServiceImpl{
		adRepo:              adRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
	}
}

// Create - новое объявление компании, всегда в статусе pending
func (s *AdServiceImpl) Create(db *gorm.DB, companyID string, req *dto.CreateAdRequest) (*dto.AdResponse, error) {
	company, err := s.findUser(db, companyID)
	if err != nil {
		return nil, err
	}

	ad := &models.Ad{
		Title:       req.Title,
		Description: req.Description,
		Budget:      *req.Budget,
		Category:    req.Category,
		CompanyID:   company.ID,
		Status:      models.AdStatusPending,
	}

	if err := s.adRepo.Create(db, ad); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := buildAdResponse(ad)
	resp.CompanyName = company.Name
	return resp, nil
}

// ListForInfluencer - pending объявления в категориях инфлюенсера,
// с именем компании-владельца
func (s *AdServiceImpl) ListForInfluencer(db *gorm.DB, influencerID string) ([]dto.AdResponse, error) {
	influencer, err := s.findUser(db, influencerID)
	if err != nil {
		return nil, err
	}

	ads, err := s.adRepo.FindPendingByCategories(db, influencer.CategoryList())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.joinUserNames(db, ads, true)
}

// ListForCompany - объявления компании, с именем принявшего инфлюенсера
func (s *AdServiceImpl) ListForCompany(db *gorm.DB, companyID string) ([]dto.AdResponse, error) {
	if _, err := s.findUser(db, companyID); err != nil {
		return nil, err
	}

	ads, err := s.adRepo.FindByCompany(db, companyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.joinUserNames(db, ads, false)
}

// ListAccepted - принятые инфлюенсером объявления
func (s *AdServiceImpl) ListAccepted(db *gorm.DB, influencerID string) ([]dto.AdResponse, error) {
	if _, err := s.findUser(db, influencerID); err != nil {
		return nil, err
	}

	ads, err := s.adRepo.FindAcceptedBy(db, influencerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.joinUserNames(db, ads, true)
}

// Accept - переход pending -> accepted.
// Условный UPDATE (WHERE status='pending') закрывает гонку двух
// конкурирующих решений; смена статуса и уведомление компании идут
// в одной транзакции, чтобы не остаться с принятым объявлением без
// уведомления.
func (s *AdServiceImpl) Accept(db *gorm.DB, influencerID, adID string) error {
	influencer, err := s.findUser(db, influencerID)
	if err != nil {
		return err
	}

	ad, err := s.findAd(db, adID)
	if err != nil {
		return err
	}

	if ad.Status != models.AdStatusPending {
		return apperrors.ErrAdNotPending
	}

	return db.Transaction(func(tx *gorm.DB) error {
		applied, err := s.adRepo.UpdateStatusIfPending(tx, adID, models.AdStatusAccepted, &influencerID)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if !applied {
			// Кто-то успел принять/отклонить между чтением и записью
			return apperrors.ErrAdNotPending
		}

		if err := s.notificationService.NotifyAdAccepted(tx, ad, influencer); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
}

// Reject - переход pending -> rejected. Уведомление пишется всегда,
// без дедупликации (асимметрия с Accept сохранена, см. DESIGN.md).
func (s *AdServiceImpl) Reject(db *gorm.DB, influencerID, adID string) error {
	influencer, err := s.findUser(db, influencerID)
	if err != nil {
		return err
	}

	ad, err := s.findAd(db, adID)
	if err != nil {
		return err
	}

	if ad.Status != models.AdStatusPending {
		return apperrors.ErrAdNotPending
	}

	return db.Transaction(func(tx *gorm.DB) error {
		applied, err := s.adRepo.UpdateStatusIfPending(tx, adID, models.AdStatusRejected, nil)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if !applied {
			return apperrors.ErrAdNotPending
		}

		if err := s.notificationService.NotifyAdRejected(tx, ad, influencer); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
}

// SubmitProof - write-once доказательство выполнения.
// Доступно только принявшему инфлюенсеру, повторная отправка - 400.
func (s *AdServiceImpl) SubmitProof(db *gorm.DB, influencerID, adID string, req *dto.SubmitProofRequest) error {
	ad, err := s.findAd(db, adID)
	if err != nil {
		return err
	}

	if ad.AcceptedBy == nil || *ad.AcceptedBy != influencerID {
		return apperrors.ErrNotAdAcceptor
	}

	if ad.Proof.Submitted() {
		return apperrors.ErrProofAlreadySubmitted
	}

	applied, err := s.adRepo.SubmitProof(db, adID, models.AdProof{
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !applied {
		// Конкурирующая отправка успела раньше
		return apperrors.ErrProofAlreadySubmitted
	}
	return nil
}

// Delete - удаление объявления владельцем, безусловное по статусу
func (s *AdServiceImpl) Delete(db *gorm.DB, companyID, adID string) error {
	ad, err := s.findAd(db, adID)
	if err != nil {
		return err
	}

	if ad.CompanyID != companyID {
		return apperrors.ErrNotAdOwner
	}

	if err := s.adRepo.Delete(db, adID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// --- Helpers ---

func (s *AdServiceImpl) findUser(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *AdServiceImpl) findAd(db *gorm.DB, adID string) (*models.Ad, error) {
	ad, err := s.adRepo.FindByID(db, adID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdNotFound) {
			return nil, apperrors.ErrAdNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return ad, nil
}

// joinUserNames обогащает объявления именами второй стороны:
// withCompany=true подставляет имя компании-владельца,
// иначе - имя принявшего инфлюенсера.
func (s *AdServiceImpl) joinUserNames(db *gorm.DB, ads []models.Ad, withCompany bool) ([]dto.AdResponse, error) {
	idSet := make(map[string]bool)
	for i := range ads {
		if withCompany {
			idSet[ads[i].CompanyID] = true
		} else if ads[i].AcceptedBy != nil {
			idSet[*ads[i].AcceptedBy] = true
		}
	}

	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	users, err := s.userRepo.FindByIDs(db, ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	names := make(map[string]string, len(users))
	for i := range users {
		names[users[i].ID] = users[i].Name
	}

	responses := make([]dto.AdResponse, 0, len(ads))
	for i := range ads {
		resp := buildAdResponse(&ads[i])
		if withCompany {
			resp.CompanyName = names[ads[i].CompanyID]
		} else if ads[i].AcceptedBy != nil {
			resp.AcceptedByName = names[*ads[i].AcceptedBy]
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func buildAdResponse(ad *models.Ad) *dto.AdResponse {
	return &dto.AdResponse{
		ID:          ad.ID,
		Title:       ad.Title,
		Description: ad.Description,
		Budget:      ad.Budget,
		Category:    ad.Category,
		CompanyID:   ad.CompanyID,
		Status:      ad.Status,
		AcceptedBy:  ad.AcceptedBy,
		Proof:       ad.Proof,
		CreatedAt:   ad.CreatedAt,
	}
}
