package source

import (
	"regexp"

	"github.com/Masterminds/semver"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"k8s.io/apimachinery/pkg/version"
)

// minServerVersion is the first release serving networking.k8s.io/v1 policies with ipBlock peers.
const minServerVersion = "1.8"

// ErrUnsupportedServer is returned when the API server is older than minServerVersion.
var ErrUnsupportedServer = errors.New("server does not support networking.k8s.io/v1 network policies")

// managed offerings report minors such as "24+".
var re = regexp.MustCompile(`\d+`)

func parseServerVersion(info *version.Info) (*semver.Version, error) {
	minor := re.FindString(info.Minor)
	if minor == "" {
		return nil, errors.Errorf("failed to parse server minor version %q", info.Minor)
	}
	v, err := semver.NewVersion(info.Major + "." + minor)
	return v, errors.Wrapf(err, "failed to parse server version %s.%s", info.Major, info.Minor)
}

// CheckServerVersion fails with ErrUnsupportedServer when the cluster can't serve the policies this source lists.
func (c *ClusterSource) CheckServerVersion() error {
	info, err := c.client.Discovery().ServerVersion()
	if err != nil {
		return errors.Wrap(err, "failed to get server version")
	}
	v, err := parseServerVersion(info)
	if err != nil {
		return err
	}
	minVersion, err := semver.NewVersion(minServerVersion)
	if err != nil {
		return errors.Wrap(err, "failed to parse minimum server version")
	}

	c.logger.Debug("Checked server version", zap.String("version", info.GitVersion))
	if v.LessThan(minVersion) {
		return errors.Wrapf(ErrUnsupportedServer, "server version %s", v)
	}
	return nil
}
