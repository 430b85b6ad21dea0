package models

import (
	"time"
)

type Project struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Members []ProjectMember `gorm:"foreignKey:ProjectID" json:"members"`
}

func (Project) TableName() string {
	return "projects"
}

type ProjectMember struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	ProjectID  uint      `gorm:"not null;uniqueIndex:idx_project_member,priority:1" json:"project_id"`
	EmployeeID uint      `gorm:"not null;uniqueIndex:idx_project_member,priority:2" json:"employee_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	Employee Employee `gorm:"foreignKey:EmployeeID" json:"-"`
}

func (ProjectMember) TableName() string {
	return "project_members"
}
