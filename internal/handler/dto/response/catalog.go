package response

import (
	"beauty-booking/internal/domain/catalog"
	"beauty-booking/internal/pkg/errs"
	"beauty-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"priceCents"`
	Price       string    `json:"price"`
}

func FromServiceView(v *queries.ServiceView) (*ServiceResponse, error) {
	var resp ServiceResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	price, err := formatPrice(v.PriceCents)
	if err != nil {
		return nil, err
	}
	resp.Price = price
	return &resp, nil
}

func FromServiceViews(views []*queries.ServiceView) ([]*ServiceResponse, error) {
	result := make([]*ServiceResponse, 0, len(views))
	for _, v := range views {
		resp, err := FromServiceView(v)
		if err != nil {
			return nil, err
		}
		result = append(result, resp)
	}
	return result, nil
}

func formatPrice(cents int64) (string, error) {
	m, err := catalog.NewMoney(cents)
	if err != nil {
		return "", errs.Wrapf(err, "format price %d", cents)
	}
	return m.String(), nil
}
