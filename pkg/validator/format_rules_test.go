package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/utaipei/fundraising/pkg/validator"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"a@b.c",
		"donation@utaipei.edu.tw",
		"first.last+tag@example.com",
		"user@sub.domain.org",
	}
	for _, v := range valid {
		assert.NoError(t, validator.Apply(validator.ValidEmail("email", v)), "email %q", v)
	}

	invalid := []string{
		"",
		"not-an-email",
		"a@b",
		"@b.c",
		"a@.c",
		"a@b.",
		"a b@c.d",
		"a@@b.c",
		" a@b.c",
	}
	for _, v := range invalid {
		assert.Error(t, validator.Apply(validator.ValidEmail("email", v)), "email %q", v)
	}
}

func TestValidTaiwanPhone(t *testing.T) {
	valid := []string{
		"0912345678",
		"0912 345 678",
		" 0912345678 ",
		"02-23113040",
		"0223113040",
		"037-123456",
		"049 2345678",
	}
	for _, v := range valid {
		assert.NoError(t, validator.Apply(validator.ValidTaiwanPhone("phone", v)), "phone %q", v)
	}

	invalid := []string{
		"",
		"123",
		"+886912345678",
		"(02) 2311-3040",
		"0912-345-678",
		"0912345678901",
		"1912345678",
		"02-12345",
	}
	for _, v := range invalid {
		assert.Error(t, validator.Apply(validator.ValidTaiwanPhone("phone", v)), "phone %q", v)
	}
}
