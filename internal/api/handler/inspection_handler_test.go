package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/roadworthy/pti-system/internal/core/domain"
	"github.com/roadworthy/pti-system/internal/core/ports"
)

type stubInspectionService struct {
	createFn       func(ctx context.Context, user *domain.User, input ports.CreateInspectionInput) (*domain.Inspection, error)
	listFn         func(ctx context.Context, user *domain.User) ([]*domain.Inspection, error)
	searchFn       func(ctx context.Context, user *domain.User, plate string) ([]*domain.Inspection, error)
	updateFn       func(ctx context.Context, user *domain.User, id string, input ports.UpdateInspectionInput) (*domain.Inspection, error)
	deleteFn       func(ctx context.Context, user *domain.User, id string) error
	expiringSoonFn func(ctx context.Context, user *domain.User) ([]*domain.Inspection, error)
}

func (s *stubInspectionService) Create(ctx context.Context, user *domain.User, input ports.CreateInspectionInput) (*domain.Inspection, error) {
	return s.createFn(ctx, user, input)
}

func (s *stubInspectionService) List(ctx context.Context, user *domain.User) ([]*domain.Inspection, error) {
	return s.listFn(ctx, user)
}

func (s *stubInspectionService) Search(ctx context.Context, user *domain.User, plate string) ([]*domain.Inspection, error) {
	return s.searchFn(ctx, user, plate)
}

func (s *stubInspectionService) Update(ctx context.Context, user *domain.User, id string, input ports.UpdateInspectionInput) (*domain.Inspection, error) {
	return s.updateFn(ctx, user, id, input)
}

func (s *stubInspectionService) Delete(ctx context.Context, user *domain.User, id string) error {
	return s.deleteFn(ctx, user, id)
}

func (s *stubInspectionService) ExpiringSoon(ctx context.Context, user *domain.User) ([]*domain.Inspection, error) {
	return s.expiringSoonFn(ctx, user)
}

var inspectorUser = &domain.User{ID: "insp-1", Role: domain.RoleInspector, InspectorID: "INSP-7"}

const createBody = `{
	"car_license_plate": "CJ-22-ABC",
	"owner_phone": "0712345678",
	"inspection_date": "15-01-2025",
	"expiry_date": "15-01-2026",
	"inspector_name": "Ion Pop",
	"inspector_phone": "0798765432",
	"car_kilometers": 125000
}`

func TestInspectionHandler_Create(t *testing.T) {
	stub := &stubInspectionService{
		createFn: func(_ context.Context, user *domain.User, input ports.CreateInspectionInput) (*domain.Inspection, error) {
			if user.ID != "insp-1" {
				t.Fatalf("unexpected caller: %s", user.ID)
			}
			if input.CarLicensePlate != "CJ-22-ABC" || input.CarKilometers != 125000 || input.ExpiryDate != "15-01-2026" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Inspection{ID: "i-1", CarLicensePlate: input.CarLicensePlate}, nil
		},
	}
	handler := NewInspectionHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/inspections", createBody)
	c.Set("user", inspectorUser)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp domain.Inspection
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != "i-1" || resp.CarLicensePlate != "CJ-22-ABC" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestInspectionHandler_Create_InvalidDate(t *testing.T) {
	stub := &stubInspectionService{
		createFn: func(_ context.Context, _ *domain.User, _ ports.CreateInspectionInput) (*domain.Inspection, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewInspectionHandler(stub)

	body := `{
		"car_license_plate": "CJ-22-ABC",
		"owner_phone": "0712345678",
		"inspection_date": "2025-01-15",
		"expiry_date": "15-01-2026",
		"inspector_name": "Ion Pop",
		"inspector_phone": "0798765432",
		"car_kilometers": 125000
	}`
	c, _ := newTestContext(t, http.MethodPost, "/inspections", body)
	c.Set("user", inspectorUser)

	err := handler.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestInspectionHandler_Create_NegativeKilometers(t *testing.T) {
	stub := &stubInspectionService{
		createFn: func(_ context.Context, _ *domain.User, _ ports.CreateInspectionInput) (*domain.Inspection, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewInspectionHandler(stub)

	body := `{
		"car_license_plate": "CJ-22-ABC",
		"owner_phone": "0712345678",
		"inspection_date": "15-01-2025",
		"expiry_date": "15-01-2026",
		"inspector_name": "Ion Pop",
		"inspector_phone": "0798765432",
		"car_kilometers": -5
	}`
	c, _ := newTestContext(t, http.MethodPost, "/inspections", body)
	c.Set("user", inspectorUser)

	err := handler.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestInspectionHandler_List(t *testing.T) {
	stub := &stubInspectionService{
		listFn: func(_ context.Context, user *domain.User) ([]*domain.Inspection, error) {
			return []*domain.Inspection{{ID: "i-1"}, {ID: "i-2"}}, nil
		},
	}
	handler := NewInspectionHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/inspections", "")
	c.Set("user", inspectorUser)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []*domain.Inspection
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 records, got %d", len(resp))
	}
}

func TestInspectionHandler_List_EmptyIsArray(t *testing.T) {
	stub := &stubInspectionService{
		listFn: func(_ context.Context, _ *domain.User) ([]*domain.Inspection, error) {
			return []*domain.Inspection{}, nil
		},
	}
	handler := NewInspectionHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/inspections", "")
	c.Set("user", &domain.User{ID: "u-1", Role: domain.RoleClient})

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	// Clients with no cars must see [], never null.
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty json array, got %q", body)
	}
}

func TestInspectionHandler_Search(t *testing.T) {
	stub := &stubInspectionService{
		searchFn: func(_ context.Context, _ *domain.User, plate string) ([]*domain.Inspection, error) {
			if plate != "CJ-22-ABC" {
				t.Fatalf("unexpected plate: %s", plate)
			}
			return []*domain.Inspection{{ID: "i-1", CarLicensePlate: plate}}, nil
		},
	}
	handler := NewInspectionHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/inspections/search/CJ-22-ABC", "")
	c.SetParamNames("license_plate")
	c.SetParamValues("CJ-22-ABC")
	c.Set("user", inspectorUser)

	if err := handler.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestInspectionHandler_Search_ForbiddenPropagates(t *testing.T) {
	stub := &stubInspectionService{
		searchFn: func(_ context.Context, _ *domain.User, _ string) ([]*domain.Inspection, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewInspectionHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/inspections/search/TM-99-ZZZ", "")
	c.SetParamNames("license_plate")
	c.SetParamValues("TM-99-ZZZ")
	c.Set("user", &domain.User{ID: "u-1", Role: domain.RoleClient})

	if err := handler.Search(c); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestInspectionHandler_Update_PartialBody(t *testing.T) {
	stub := &stubInspectionService{
		updateFn: func(_ context.Context, _ *domain.User, id string, input ports.UpdateInspectionInput) (*domain.Inspection, error) {
			if id != "i-1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if input.CarKilometers == nil || *input.CarKilometers != 130000 {
				t.Fatalf("car_kilometers not forwarded: %+v", input)
			}
			// Absent fields must come through as nil, not zero values.
			if input.CarLicensePlate != nil || input.ExpiryDate != nil {
				t.Fatalf("unset fields were populated: %+v", input)
			}
			return &domain.Inspection{ID: id, CarKilometers: 130000}, nil
		},
	}
	handler := NewInspectionHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/inspections/i-1", `{"car_kilometers":130000}`)
	c.SetParamNames("id")
	c.SetParamValues("i-1")
	c.Set("user", inspectorUser)

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestInspectionHandler_Update_BadDateRejected(t *testing.T) {
	stub := &stubInspectionService{
		updateFn: func(_ context.Context, _ *domain.User, _ string, _ ports.UpdateInspectionInput) (*domain.Inspection, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewInspectionHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/inspections/i-1", `{"expiry_date":"2026-01-15"}`)
	c.SetParamNames("id")
	c.SetParamValues("i-1")
	c.Set("user", inspectorUser)

	err := handler.Update(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestInspectionHandler_Delete(t *testing.T) {
	stub := &stubInspectionService{
		deleteFn: func(_ context.Context, _ *domain.User, id string) error {
			if id != "i-1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	handler := NewInspectionHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/inspections/i-1", "")
	c.SetParamNames("id")
	c.SetParamValues("i-1")
	c.Set("user", inspectorUser)

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "inspection deleted" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestInspectionHandler_Delete_UnknownID(t *testing.T) {
	stub := &stubInspectionService{
		deleteFn: func(_ context.Context, _ *domain.User, _ string) error {
			return domain.ErrInspectionNotFound
		},
	}
	handler := NewInspectionHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/inspections/ghost", "")
	c.SetParamNames("id")
	c.SetParamValues("ghost")
	c.Set("user", inspectorUser)

	if err := handler.Delete(c); err != domain.ErrInspectionNotFound {
		t.Fatalf("expected ErrInspectionNotFound, got %v", err)
	}
}

func TestInspectionHandler_ExpiringSoon(t *testing.T) {
	stub := &stubInspectionService{
		expiringSoonFn: func(_ context.Context, user *domain.User) ([]*domain.Inspection, error) {
			return []*domain.Inspection{{ID: "i-1", ExpiryDate: "15-01-2025"}}, nil
		},
	}
	handler := NewInspectionHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/inspections/expiring/soon", "")
	c.Set("user", &domain.User{ID: "u-1", Role: domain.RoleClient})

	if err := handler.ExpiringSoon(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []*domain.Inspection
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0].ExpiryDate != "15-01-2025" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
