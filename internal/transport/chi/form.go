package chi

import (
	"net/url"

	"github.com/oapi-codegen/runtime"

	"github.com/kailas-cloud/laptopprice/internal/domain"
	"github.com/kailas-cloud/laptopprice/internal/domain/laptop"
)

// inputFromValues binds form-encoded values (an HTML form post or a query
// string) into a laptop.Input. Every field is required.
func inputFromValues(values url.Values) (laptop.Input, error) {
	var in laptop.Input
	params := []struct {
		name string
		dest any
	}{
		{laptop.FieldBrand, &in.Brand},
		{laptop.FieldType, &in.Type},
		{laptop.FieldOS, &in.OS},
		{laptop.FieldRAM, &in.RAM},
		{laptop.FieldWeight, &in.Weight},
		{laptop.FieldCPU, &in.CPU},
		{laptop.FieldGPU, &in.GPU},
		{laptop.FieldScreenSize, &in.ScreenSize},
		{laptop.FieldResolution, &in.Resolution},
		{laptop.FieldStorage, &in.Storage},
	}
	for _, p := range params {
		if err := runtime.BindQueryParameter("form", true, true, p.name, values, p.dest); err != nil {
			return in, domain.NewFieldError(p.name, values.Get(p.name), err.Error())
		}
	}
	return in, nil
}

// specFromValues binds and validates form-encoded values.
func specFromValues(values url.Values) (laptop.Input, laptop.Spec, error) {
	in, err := inputFromValues(values)
	if err != nil {
		return in, laptop.Spec{}, err
	}
	spec, err := laptop.New(in)
	return in, spec, err
}
