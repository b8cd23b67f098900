package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Soufian-A/runners-erp/internal/config"
	"github.com/Soufian-A/runners-erp/internal/lock"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWait_NoErrors() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestBuildLocker_NoAddress() {
	s.app.cfg = &config.Config{}

	s.IsType(lock.NopLocker{}, s.app.buildLocker(context.Background()))
}

func (s *ApplicationSuite) TestBuildLocker_Unreachable() {
	s.app.cfg = &config.Config{RedisAddress: "127.0.0.1:1", LockTTL: time.Second}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.IsType(lock.NopLocker{}, s.app.buildLocker(ctx))
}
