package usecase

import (
	"travel_backoffice/internal/domain/entities"
	"travel_backoffice/internal/usecase/interfaces"
)

// IUploadAdminUseCase gives operators a view of the background upload queue.
type IUploadAdminUseCase interface {
	Pending() []entities.UploadTask
	Failed() []entities.UploadTask
}

type UploadAdminUseCase struct {
	queue interfaces.IUploadQueue
}

var _ IUploadAdminUseCase = (*UploadAdminUseCase)(nil)

func NewUploadAdminUseCase(queue interfaces.IUploadQueue) *UploadAdminUseCase {
	return &UploadAdminUseCase{queue: queue}
}

func (u *UploadAdminUseCase) Pending() []entities.UploadTask {
	return u.queue.Pending()
}

func (u *UploadAdminUseCase) Failed() []entities.UploadTask {
	return u.queue.Failed()
}
