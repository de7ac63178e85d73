package repository

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/fields"
	"k8s.io/client-go/kubernetes"
)

//go:generate mockgen -source=pod_repository.go -destination=../mocks/repository/mock_pod_repository.go -package=mockrepository

type PodRepository interface {
	Namespace() string
	GetRunningPods(ctx context.Context) ([]corev1.Pod, error)
}

type podRepository struct {
	client    kubernetes.Interface
	namespace string
}

func (p *podRepository) Namespace() string {
	return p.namespace
}

func (p *podRepository) GetRunningPods(ctx context.Context) ([]corev1.Pod, error) {
	list, err := p.client.CoreV1().Pods(p.namespace).List(ctx, metav1.ListOptions{
		FieldSelector: fields.OneTermEqualSelector("status.phase", string(corev1.PodRunning)).String(),
	})
	if err != nil {
		return nil, fmt.Errorf("PodRepo.GetRunningPods: %w", err)
	}
	pods := make([]corev1.Pod, 0, len(list.Items))
	for _, pod := range list.Items {
		// not every client honours field selectors
		if pod.Status.Phase == corev1.PodRunning {
			pods = append(pods, pod)
		}
	}
	return pods, nil
}

func NewPodRepository(client kubernetes.Interface, namespace string) PodRepository {
	return &podRepository{
		client:    client,
		namespace: namespace,
	}
}
