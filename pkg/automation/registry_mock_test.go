package automation_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/xsoar-content/k8s-automation/pkg/automation"
	"github.com/xsoar-content/k8s-automation/pkg/automation/mocks"
)

func TestRegistryRunPassesArgs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	args := automation.Args{"ClusterName": "c1", "value": "x"}
	script := mocks.NewMockScript(ctrl)
	script.EXPECT().Name().Return("mocked").AnyTimes()
	script.EXPECT().Run(gomock.Any(), args).Return(automation.TextEntry("done"), nil).Times(1)

	r := automation.NewRegistry(nil, script)
	entry, err := r.Run(context.Background(), "mocked", args)
	require.NoError(t, err)
	require.Equal(t, "done", entry.Contents)
}

func TestRegistryRunNotCalledForUnknownScript(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	script := mocks.NewMockScript(ctrl)
	script.EXPECT().Name().Return("mocked").AnyTimes()
	script.EXPECT().Run(gomock.Any(), gomock.Any()).Times(0)

	r := automation.NewRegistry(nil, script)
	_, err := r.Run(context.Background(), "other", nil)
	require.Error(t, err)
}
