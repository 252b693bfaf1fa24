package scenarios

import (
	"errors"
	"fmt"

	"github.com/devicelab-dev/appiumqa/pkg/api"
	"github.com/devicelab-dev/appiumqa/pkg/suite"
)

// Backend checks mirror the login flow against the mock API. They run
// without a device session.

func init() {
	suite.Register(suite.Case{
		Name:      "api_login_valid_credentials",
		Markers:   []string{suite.MarkerSmoke, suite.MarkerAPI},
		Run:       apiLoginValidCredentials,
		NoSession: true,
	})
	suite.Register(suite.Case{
		Name:      "api_login_missing_password",
		Markers:   []string{suite.MarkerRegression, suite.MarkerAPI},
		Run:       apiLoginMissingPassword,
		NoSession: true,
	})
	suite.Register(suite.Case{
		Name:      "api_users_schema",
		Markers:   []string{suite.MarkerRegression, suite.MarkerAPI},
		Run:       apiUsersSchema,
		NoSession: true,
	})
}

func apiLoginValidCredentials(c *suite.Context) error {
	resp, err := c.API.Login(c.Ctx, api.LoginRequest{
		Email:    validEmail,
		Password: validPassword,
	})
	if err != nil {
		return err
	}

	return suite.Expect(resp.Token != "", "login response carries a token")
}

func apiLoginMissingPassword(c *suite.Context) error {
	_, err := c.API.Login(c.Ctx, api.LoginRequest{Email: validEmail})

	var statusErr *api.StatusError
	if !errors.As(err, &statusErr) {
		return fmt.Errorf("expected an error status for missing password, got %v", err)
	}
	if statusErr.StatusCode != 400 {
		return fmt.Errorf("expected 400 for missing password, got %d", statusErr.StatusCode)
	}
	return suite.Expect(statusErr.Message != "", "error response names the missing field")
}

func apiUsersSchema(c *suite.Context) error {
	resp, err := c.API.Users(c.Ctx, 2)
	if err != nil {
		return err
	}

	if err := suite.Expect(len(resp.Data) > 0, "users listing is not empty"); err != nil {
		return err
	}
	for _, u := range resp.Data {
		if u.ID == 0 || u.Email == "" {
			return fmt.Errorf("user entry missing id or email: %+v", u)
		}
	}
	return nil
}
