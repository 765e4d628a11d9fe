package source

import (
	"context"
	"time"

	"github.com/avast/retry-go/v3"
	"github.com/pkg/errors"
	"github.com/xsoar-content/k8s-automation/log"
	"github.com/xsoar-content/k8s-automation/pkg/translation"
	"go.uber.org/zap"
	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
)

// ClusterSource lists NetworkPolicy objects from a live cluster.
type ClusterSource struct {
	client   kubernetes.Interface
	logger   *zap.Logger
	attempts uint
	delay    time.Duration
}

// ClusterSourceOption configures a ClusterSource.
type ClusterSourceOption func(*ClusterSource)

// WithRetry sets how many times a list request is tried and the fixed delay between tries.
// A request is always tried at least once.
func WithRetry(attempts uint, delay time.Duration) ClusterSourceOption {
	return func(c *ClusterSource) {
		if attempts == 0 {
			attempts = 1
		}
		c.attempts = attempts
		c.delay = delay
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) ClusterSourceOption {
	return func(c *ClusterSource) {
		c.logger = log.OrNop(logger)
	}
}

// NewClusterSource returns a ClusterSource reading through client.
func NewClusterSource(client kubernetes.Interface, opts ...ClusterSourceOption) *ClusterSource {
	c := &ClusterSource{
		client:   client,
		logger:   zap.NewNop(),
		attempts: 1,
		delay:    time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientset creates a clientset from the kubeconfig at kubeConfigPath,
// or from the in-cluster configuration when the path is empty.
func NewClientset(kubeConfigPath string) (kubernetes.Interface, error) {
	config, err := clientcmd.BuildConfigFromFlags("", kubeConfigPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load kubernetes config")
	}

	client, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kubernetes clientset")
	}
	return client, nil
}

// NetworkPolicies returns the NetworkPolicy objects in namespace, or in every namespace when it is empty.
func (c *ClusterSource) NetworkPolicies(ctx context.Context, namespace string) ([]*networkingv1.NetworkPolicy, error) {
	var list *networkingv1.NetworkPolicyList
	listFn := func() (err error) {
		list, err = c.client.NetworkingV1().NetworkPolicies(namespace).List(ctx, metav1.ListOptions{})
		if err != nil {
			c.logger.Error("Failed to list network policies. retrying...", zap.String("namespace", namespace), zap.Error(err))
			return errors.Wrap(err, "failed to list network policies")
		}
		return nil
	}

	err := retry.Do(listFn,
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, errors.Wrap(err, "could not list network policies")
	}

	policies := make([]*networkingv1.NetworkPolicy, 0, len(list.Items))
	for i := range list.Items {
		policies = append(policies, &list.Items[i])
	}
	c.logger.Debug("Listed network policies", zap.String("namespace", namespace), zap.Int("count", len(policies)))
	return policies, nil
}

// Objects returns the NetworkPolicy objects in namespace in the unstructured form the translator reads.
func (c *ClusterSource) Objects(ctx context.Context, namespace string) ([]map[string]interface{}, error) {
	policies, err := c.NetworkPolicies(ctx, namespace)
	if err != nil {
		return nil, err
	}

	objects := make([]map[string]interface{}, 0, len(policies))
	for _, np := range policies {
		obj, err := translation.ToUnstructured(np)
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}
	return objects, nil
}
