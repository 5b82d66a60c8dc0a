package handler

import (
	"net/http"
	"testing"

	"quickdash/internal/domain/entity"
	domainerrors "quickdash/internal/domain/errors"
	"quickdash/internal/domain/service"
	mockUsecase "quickdash/internal/mocks/usecase"
	"quickdash/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type addressHandlerFixtures struct {
	echo      *echo.Echo
	addresses *mockUsecase.MockAddressUsecase
}

func createTestAddressHandler(t *testing.T) addressHandlerFixtures {
	e, _ := newTestEcho(t)
	addresses := mockUsecase.NewMockAddressUsecase(t)

	h := NewAddressHandler(AddressHandlerParams{AddressUC: addresses, Logger: newDiscardLogger()})
	e.GET("/addresses", h.ListAddresses)
	e.POST("/addresses", h.CreateAddress)
	e.DELETE("/addresses/:id", h.DeleteAddress)
	e.POST("/addresses/:id/select", h.SelectAddress)

	return addressHandlerFixtures{echo: e, addresses: addresses}
}

func TestAddressHandler_ListAddresses(t *testing.T) {
	fx := createTestAddressHandler(t)

	fx.addresses.EXPECT().List(mock.Anything).Return([]*entity.CustomerAddress{{ID: "addr-1", Label: "HOME"}}, nil)

	rec, env := doRequest(t, fx.echo, http.MethodGet, "/addresses", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]entity.CustomerAddress](t, env), 1)
}

func TestAddressHandler_CreateAddress_UnserviceableIsWarning(t *testing.T) {
	fx := createTestAddressHandler(t)

	fx.addresses.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(req *service.CreateAddressRequest) bool {
			return req.HouseNo == "12" && req.Pincode == "560034"
		})).
		Return(&usecase.CreateAddressResult{
			Address:     &entity.CustomerAddress{ID: "addr-7"},
			Serviceable: false,
			Warning:     "We do not deliver to this address yet. It has been saved for later.",
		}, nil)

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/addresses",
		`{"label":"HOME","house_no":"12","google_address_text":"Koramangala","city":"Bengaluru","pincode":"560034","latitude":12.93,"longitude":77.62,"receiver_name":"Asha","receiver_phone":"9876543210"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "We do not deliver to this address yet. It has been saved for later.", env.Message)
	assert.False(t, decodeData[usecase.CreateAddressResult](t, env).Serviceable)
}

func TestAddressHandler_CreateAddress_ValidationFailure(t *testing.T) {
	fx := createTestAddressHandler(t)

	fx.addresses.EXPECT().
		Create(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidInput.WithDetails("pincode is required"))

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/addresses", `{"label":"HOME"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestAddressHandler_DeleteAndSelect(t *testing.T) {
	fx := createTestAddressHandler(t)

	fx.addresses.EXPECT().Delete(mock.Anything, "addr-1").Return(nil)
	fx.addresses.EXPECT().Select(mock.Anything, "addr-2").Return(&entity.DeliveryLocation{AddressID: "addr-2"}, nil)
	fx.addresses.EXPECT().Select(mock.Anything, "addr-404").Return(nil, domainerrors.ErrNotFound)

	rec, _ := doRequest(t, fx.echo, http.MethodDelete, "/addresses/addr-1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/addresses/addr-2/select", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "addr-2", decodeData[entity.DeliveryLocation](t, env).AddressID)

	rec, _ = doRequest(t, fx.echo, http.MethodPost, "/addresses/addr-404/select", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
