package services

import (
	"frontdesk-backend/models"

	"gorm.io/gorm"
)

type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func (s *RoomTypeService) GetAll() ([]models.RoomType, error) {
	var types []models.RoomType
	err := s.DB.Find(&types).Error
	return types, err
}

func (s *RoomTypeService) Create(rt *models.RoomType) error {
	return s.DB.Create(rt).Error
}

func (s *RoomTypeService) Update(id uint, rt *models.RoomType) error {
	var existing models.RoomType
	if err := s.DB.First(&existing, id).Error; err != nil {
		return err
	}
	rt.ID = id
	return s.DB.Model(&existing).Updates(rt).Error
}

func (s *RoomTypeService) Delete(id uint) error {
	return s.DB.Delete(&models.RoomType{}, id).Error
}
