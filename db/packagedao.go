package db

import (
	"errors"
	"gorm.io/gorm"

	"easemytrip-planner/model"
)

type PackageDAO struct {
	db *gorm.DB
}

func NewPackageDAO(db *gorm.DB) *PackageDAO {
	return &PackageDAO{db: db}
}

func (packageDAO *PackageDAO) GetPackagesByUserID(userID string) ([]model.TravelPackage, error) {
	var packages []model.TravelPackage
	result := packageDAO.db.Where("user_id = ?", userID).Order("id_package DESC").Find(&packages)
	return packages, result.Error
}

func (packageDAO *PackageDAO) GetPackageById(packageID int) (model.TravelPackage, error) {
	var travelPackage model.TravelPackage
	result := packageDAO.db.First(&travelPackage, packageID)
	return travelPackage, result.Error
}

func (packageDAO *PackageDAO) AddPackage(travelPackage *model.TravelPackage) error {
	// takes a pointer, in order to update the param struct
	result := packageDAO.db.Create(travelPackage)
	return result.Error
}

func (packageDAO *PackageDAO) UpdatePackage(travelPackage model.TravelPackage) error {
	result := packageDAO.db.Save(&travelPackage)
	return result.Error
}

func (packageDAO *PackageDAO) DeletePackage(packageID int, userID string) error {
	result := packageDAO.db.Where("user_id = ?", userID).Delete(&model.TravelPackage{}, packageID)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("travel package not found")
	}

	return nil
}
