package models

import "github.com/m04kA/SMC-SchedulerService/internal/domain"

// UpdateBusinessInfoRequest изменение профиля.
// BackgroundImagePath == nil оставляет фон без изменений, RemoveBackground удаляет его.
type UpdateBusinessInfoRequest struct {
	Name                string  `json:"name"`
	Description         *string `json:"description,omitempty"`
	BackgroundImagePath *string `json:"backgroundImagePath,omitempty"`
	RemoveBackground    bool    `json:"removeBackground"`
}

type BusinessInfoResponse struct {
	Name                string  `json:"name"`
	Description         *string `json:"description,omitempty"`
	BackgroundImagePath *string `json:"backgroundImagePath,omitempty"`
}

func FromDomainBusinessInfo(info *domain.BusinessInfo) *BusinessInfoResponse {
	return &BusinessInfoResponse{
		Name:                info.Name,
		Description:         info.Description,
		BackgroundImagePath: info.BackgroundImagePath,
	}
}
