package model

import "time"

// PodInfo describes one running pod, or one deployment once pods are grouped by name and version.
type PodInfo struct {
	Name          string
	PodName       string
	Version       string
	MSBranch      string
	ConfigBranch  string
	GCOptions     string
	Ports         string
	CPURequest    string
	MemoryRequest string
	CreationDate  time.Time
	Replicas      int
	Restarts      int32
	ReadyTime     string
}
