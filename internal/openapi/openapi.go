package openapi

import (
	"net/http"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
)

const jsonContentType = "application/json"

// New describes the public HTTP surface.
func New(title, version, description string) *openapi3.T {
	schemas := openapi3.Schemas{}
	ref := func(name string) *openapi3.SchemaRef {
		return openapi3.NewSchemaRef("#/components/schemas/"+name, schemas[name].Value)
	}

	schemas["Product"] = productSchema()
	schemas["ErrorEnvelope"] = errorEnvelopeSchema()
	schemas["ProductEnvelope"] = successEnvelope(ref("Product"))
	schemas["ProductListEnvelope"] = successEnvelope(&openapi3.SchemaRef{Value: &openapi3.Schema{
		Type:  &openapi3.Types{openapi3.TypeArray},
		Items: ref("Product"),
	}})
	schemas["InfoEnvelope"] = successEnvelope(objectSchema())
	schemas["HealthEnvelope"] = successEnvelope(healthSchema())

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       title,
			Version:     version,
			Description: description,
		},
		Paths:      &openapi3.Paths{},
		Components: &openapi3.Components{Schemas: schemas},
	}

	errorEnvelope := ref("ErrorEnvelope")

	doc.Paths.Set("/", &openapi3.PathItem{Get: operation("getInfo", "API information",
		nil, ref("InfoEnvelope"), errorEnvelope)})

	health := operation("getHealth", "Health check", nil, ref("HealthEnvelope"), errorEnvelope)
	health.Responses.Set(strconv.Itoa(http.StatusServiceUnavailable),
		response("Service degraded: status=degraded, db_reachable=false", errorEnvelope))
	doc.Paths.Set("/health", &openapi3.PathItem{Get: health})

	doc.Paths.Set("/products", &openapi3.PathItem{Get: operation("listProducts", "Get all products",
		listParameters(), ref("ProductListEnvelope"), errorEnvelope, http.StatusBadRequest, http.StatusServiceUnavailable)})

	doc.Paths.Set("/products/{id}", &openapi3.PathItem{Get: operation("getProduct", "Get product by ID",
		openapi3.Parameters{pathParameter("id")}, ref("ProductEnvelope"), errorEnvelope, http.StatusNotFound, http.StatusServiceUnavailable)})

	doc.Paths.Set("/products/vendor/{vendor_id}", &openapi3.PathItem{Get: operation("listVendorProducts", "Get products by vendor",
		append(openapi3.Parameters{pathParameter("vendor_id")}, listParameters()...),
		ref("ProductListEnvelope"), errorEnvelope, http.StatusBadRequest, http.StatusServiceUnavailable)})

	return doc
}

func operation(id, summary string, params openapi3.Parameters, ok, failed *openapi3.SchemaRef, failures ...int) *openapi3.Operation {
	op := &openapi3.Operation{
		OperationID: id,
		Summary:     summary,
		Parameters:  params,
		Responses:   &openapi3.Responses{},
	}

	op.Responses.Set("200", response(http.StatusText(http.StatusOK), ok))
	for _, code := range append(failures, http.StatusInternalServerError) {
		op.Responses.Set(strconv.Itoa(code), response(http.StatusText(code), failed))
	}
	return op
}

func response(description string, schema *openapi3.SchemaRef) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: &description,
			Content: openapi3.Content{
				jsonContentType: &openapi3.MediaType{Schema: schema},
			},
		},
	}
}

func listParameters() openapi3.Parameters {
	limit := openapi3.NewIntegerSchema()
	limit.Min = floatPtr(1)
	limit.Max = floatPtr(1000)
	limit.Default = 100

	return openapi3.Parameters{
		queryParameter("limit", "Maximum number of products to return", limit),
		queryParameter("sort_by", "Field to sort by; store order when omitted",
			openapi3.NewStringSchema().WithEnum("name", "price", "createdAt")),
		queryParameter("order", "Sort order",
			openapi3.NewStringSchema().WithEnum("asc", "desc").WithDefault("asc")),
	}
}

func queryParameter(name, description string, schema *openapi3.Schema) *openapi3.ParameterRef {
	return &openapi3.ParameterRef{Value: &openapi3.Parameter{
		Name:        name,
		In:          openapi3.ParameterInQuery,
		Description: description,
		Schema:      schema.NewRef(),
	}}
}

func pathParameter(name string) *openapi3.ParameterRef {
	return &openapi3.ParameterRef{Value: &openapi3.Parameter{
		Name:     name,
		In:       openapi3.ParameterInPath,
		Required: true,
		Schema:   openapi3.NewStringSchema().NewRef(),
	}}
}

func productSchema() *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Value: &openapi3.Schema{
		Type: &openapi3.Types{openapi3.TypeObject},
		Properties: openapi3.Schemas{
			"id":          openapi3.NewStringSchema().NewRef(),
			"name":        openapi3.NewStringSchema().NewRef(),
			"price":       openapi3.NewFloat64Schema().NewRef(),
			"description": openapi3.NewStringSchema().NewRef(),
			"imageUrl":    openapi3.NewStringSchema().NewRef(),
			"vendorId":    openapi3.NewStringSchema().NewRef(),
			"email":       openapi3.NewStringSchema().NewRef(),
			"createdAt":   openapi3.NewDateTimeSchema().NewRef(),
		},
		Required: []string{"id", "name", "price", "description", "imageUrl", "vendorId", "email", "createdAt"},
	}}
}

func healthSchema() *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Value: &openapi3.Schema{
		Type: &openapi3.Types{openapi3.TypeObject},
		Properties: openapi3.Schemas{
			"status":       openapi3.NewStringSchema().NewRef(),
			"db_reachable": openapi3.NewBoolSchema().NewRef(),
			"timestamp":    openapi3.NewDateTimeSchema().NewRef(),
			"services":     objectSchema(),
		},
		Required: []string{"status", "db_reachable"},
	}}
}

func successEnvelope(data *openapi3.SchemaRef) *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Value: &openapi3.Schema{
		Type: &openapi3.Types{openapi3.TypeObject},
		Properties: openapi3.Schemas{
			"success": openapi3.NewBoolSchema().NewRef(),
			"data":    data,
			"message": openapi3.NewStringSchema().NewRef(),
		},
		Required: []string{"success", "data"},
	}}
}

func errorEnvelopeSchema() *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Value: &openapi3.Schema{
		Type: &openapi3.Types{openapi3.TypeObject},
		Properties: openapi3.Schemas{
			"success":     openapi3.NewBoolSchema().NewRef(),
			"error":       openapi3.NewStringSchema().NewRef(),
			"status_code": openapi3.NewIntegerSchema().NewRef(),
		},
		Required: []string{"success", "error", "status_code"},
	}}
}

func objectSchema() *openapi3.SchemaRef {
	return openapi3.NewObjectSchema().NewRef()
}

func floatPtr(f float64) *float64 {
	return &f
}
