package benchmark

import (
	"math/rand"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/stiliangoranov/data-structures-and-algorithms/pkg/algorithms/datastructure"
)

const (
	ContainerDeque = "deque"
	ContainerList  = "list"

	WorkloadPushBack     = "push-back"
	WorkloadPushFront    = "push-front"
	WorkloadMixed        = "mixed"
	WorkloadDrain        = "drain"
	WorkloadRandomAccess = "random-access"
)

var (
	Containers = []string{ContainerDeque, ContainerList}
	Workloads  = []string{WorkloadPushBack, WorkloadPushFront, WorkloadMixed, WorkloadDrain, WorkloadRandomAccess}
)

type Config struct {
	Container string
	Workload  string
	// Ops is the number of timed operations.
	Ops int
	// BatchSize operations are timed together and make one sample.
	BatchSize int
	// BlockSize is passed to the deque; 0 selects the default.
	BlockSize int
	Seed      int64
}

func DefaultConfig() Config {
	return Config{
		Container: ContainerDeque,
		Workload:  WorkloadPushBack,
		Ops:       1000000,
		BatchSize: 1000,
		BlockSize: datastructure.DefaultBlockSize,
		Seed:      1,
	}
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func (c Config) Validate() error {
	if !contains(Containers, c.Container) {
		return errors.Errorf("benchmark: unknown container %q, want one of %v", c.Container, Containers)
	}
	if !contains(Workloads, c.Workload) {
		return errors.Errorf("benchmark: unknown workload %q, want one of %v", c.Workload, Workloads)
	}
	if c.Workload == WorkloadRandomAccess && c.Container != ContainerDeque {
		return errors.Errorf("benchmark: workload %q needs indexed access, only %q supports it", c.Workload, ContainerDeque)
	}
	if c.Ops <= 0 {
		return errors.Errorf("benchmark: ops must be positive, got %d", c.Ops)
	}
	if c.BatchSize <= 0 {
		return errors.Errorf("benchmark: batch size must be positive, got %d", c.BatchSize)
	}
	if c.BlockSize < 0 {
		return errors.Errorf("benchmark: block size must not be negative, got %d", c.BlockSize)
	}
	return nil
}

type Result struct {
	Name  string
	Ops   int
	Total time.Duration
	// BatchNanos holds the mean nanoseconds per operation of each batch.
	BatchNanos []float64
}

// NanosPerOp is the mean cost of one operation over the whole run.
func (r *Result) NanosPerOp() float64 {
	if r.Ops == 0 {
		return 0
	}
	return float64(r.Total.Nanoseconds()) / float64(r.Ops)
}

// sequence is what the workloads need from a container.
type sequence interface {
	PushBack(v int)
	PushFront(v int)
	PopBack() (int, error)
	PopFront() (int, error)
	Len() int
}

// Run executes the configured workload and times it batch by batch.
func Run(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		seq   sequence
		deque *datastructure.Deque[int]
	)
	switch cfg.Container {
	case ContainerDeque:
		deque = datastructure.NewDeque[int](datastructure.WithBlockSize(cfg.BlockSize))
		seq = deque
	case ContainerList:
		seq = datastructure.NewDoublyLinkedList[int]()
	}

	r := rand.New(rand.NewSource(cfg.Seed))
	var sink int
	var step func(i int) error
	switch cfg.Workload {
	case WorkloadPushBack:
		step = func(i int) error {
			seq.PushBack(i)
			return nil
		}
	case WorkloadPushFront:
		step = func(i int) error {
			seq.PushFront(i)
			return nil
		}
	case WorkloadMixed:
		step = func(i int) error {
			if r.Intn(2) == 0 {
				seq.PushBack(i)
			} else {
				seq.PushFront(i)
			}
			return nil
		}
	case WorkloadDrain:
		step = func(i int) error {
			var err error
			if i%2 == 0 {
				sink, err = seq.PopFront()
			} else {
				sink, err = seq.PopBack()
			}
			return err
		}
	case WorkloadRandomAccess:
		step = func(i int) error {
			var err error
			sink, err = deque.At(r.Intn(deque.Len()))
			return err
		}
	}

	if cfg.Workload == WorkloadDrain || cfg.Workload == WorkloadRandomAccess {
		for i := 0; i < cfg.Ops; i++ {
			seq.PushBack(i)
		}
	}

	res := &Result{
		Name: cfg.Container + "/" + cfg.Workload,
		Ops:  cfg.Ops,
	}
	for done := 0; done < cfg.Ops; {
		n := cfg.BatchSize
		if rest := cfg.Ops - done; rest < n {
			n = rest
		}
		start := time.Now()
		for i := done; i < done+n; i++ {
			if err := step(i); err != nil {
				return nil, errors.Wrapf(err, "benchmark: %s op %d", res.Name, i)
			}
		}
		elapsed := time.Since(start)
		res.Total += elapsed
		res.BatchNanos = append(res.BatchNanos, float64(elapsed.Nanoseconds())/float64(n))
		done += n
	}

	glog.V(2).Infof("benchmark: %s finished, %d ops, len %d, last value %d", res.Name, res.Ops, seq.Len(), sink)
	return res, nil
}
