package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signupInput struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Age      int     `json:"age" validate:"nullable,integer,gte=18"`
	Role     string  `json:"role" validate:"required,in=ADMIN,MANAGER,STAFF"`
	Slug     string  `json:"slug" validate:"nullable,alpha_dash"`
	Discount float64 `json:"discount" validate:"nullable,numeric,lte=100"`
}

func valid() signupInput {
	return signupInput{Name: "Ama", Email: "ama@example.com", Age: 30, Role: "STAFF"}
}

func TestStructValid(t *testing.T) {
	errs := Struct(valid())
	assert.False(t, HasErrors(errs), "unexpected errors: %v", errs)
}

func TestRequired(t *testing.T) {
	in := valid()
	in.Name = ""
	errs := Struct(in)
	assert.Contains(t, errs, "name")
}

func TestEmail(t *testing.T) {
	in := valid()
	in.Email = "not-an-email"
	errs := Struct(in)
	assert.Contains(t, errs, "email")
}

func TestInRuleWithMultipleValues(t *testing.T) {
	in := valid()
	in.Role = "MANAGER"
	assert.False(t, HasErrors(Struct(in)))

	in.Role = "INTERN"
	errs := Struct(in)
	assert.Contains(t, errs, "role")
}

func TestNullableSkipsEmpty(t *testing.T) {
	in := valid()
	in.Age = 0
	in.Slug = ""
	assert.False(t, HasErrors(Struct(in)))
}

func TestNumericBounds(t *testing.T) {
	in := valid()
	in.Age = 15
	errs := Struct(in)
	assert.Contains(t, errs, "age")

	in = valid()
	in.Discount = 150
	errs = Struct(in)
	assert.Contains(t, errs, "discount")
}

func TestAlphaDash(t *testing.T) {
	in := valid()
	in.Slug = "summer-sale_2026"
	assert.False(t, HasErrors(Struct(in)))

	in.Slug = "summer sale!"
	errs := Struct(in)
	assert.Contains(t, errs, "slug")
}

func TestPointerInput(t *testing.T) {
	in := valid()
	assert.False(t, HasErrors(Struct(&in)))
}
