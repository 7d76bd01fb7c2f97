package repository

import (
	"context"
	"english_station_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return translate(r.DB.WithContext(ctx).Create(user).Error)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) FindByRefreshToken(ctx context.Context, token string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Where("refresh_token = ?", token).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// ExistsByEmailOrUsername 检查邮箱或用户名是否已被占用，excludeID 用于更新时排除自身
func (r *UserRepository) ExistsByEmailOrUsername(ctx context.Context, email, username, excludeID string) (bool, error) {
	var count int64
	query := r.DB.WithContext(ctx).Model(&model.User{}).
		Where("email = ? OR username = ?", email, username)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	return users, translate(err)
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	res := r.DB.WithContext(ctx).Model(user).
		Select("email", "username", "password", "level", "progress", "streak").
		Updates(user)
	return translate(res.Error)
}

func (r *UserRepository) UpdateRefreshToken(ctx context.Context, userID, token string) error {
	res := r.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("refresh_token", token)
	return translate(res.Error)
}

func (r *UserRepository) SetAdmin(ctx context.Context, userID string, isAdmin bool) error {
	res := r.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("is_admin", isAdmin)
	return translate(res.Error)
}

// Delete 删除用户及其学习进度、测验结果
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&model.Progress{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.QuizResult{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&model.User{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translate(err)
}
