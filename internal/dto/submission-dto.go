package dto

type ContactFormDTO struct {
	Name     string `form:"name" validate:"required"`
	Surname  string `form:"surname" validate:"required"`
	Age      *int64 `form:"age" validate:"omitempty,gte=0,lte=120"`
	Phone    string `form:"phone" validate:"required,phone"`
	Email    string `form:"email" validate:"required,email"`
	Province string `form:"province" validate:"required"`
	Locality string `form:"locality" validate:"required"`
}

type JobApplicationDTO struct {
	Name       string `form:"name" validate:"required"`
	Surname    string `form:"surname" validate:"required"`
	Age        int64  `form:"age" validate:"required,gte=0,lte=120"`
	Phone      string `form:"phone" validate:"required,phone"`
	Email      string `form:"email" validate:"required,email"`
	Province   string `form:"province" validate:"required"`
	Locality   string `form:"locality" validate:"required"`
	NationalID string `form:"national_id" validate:"required"`
	Address    string `form:"address" validate:"required"`
}
