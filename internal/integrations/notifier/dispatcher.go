package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// Dispatcher рассылает уведомления в фоне по всем транспортам.
// Ошибки доставки только логируются и считаются, вызывающему не возвращаются.
type Dispatcher struct {
	senders []Sender
	timeout time.Duration
	slots   chan struct{}
	log     Logger
	metrics Metrics

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher создает диспетчер. buffer ограничивает число одновременных отправок.
func NewDispatcher(senders []Sender, timeout time.Duration, buffer int, log Logger, metrics Metrics) *Dispatcher {
	if buffer <= 0 {
		buffer = 1
	}
	return &Dispatcher{
		senders: senders,
		timeout: timeout,
		slots:   make(chan struct{}, buffer),
		log:     log,
		metrics: metrics,
	}
}

// NotifyBooking ставит уведомление в отправку и сразу возвращает управление.
// Ошибка возвращается только если уведомление не удалось поставить в очередь.
func (d *Dispatcher) NotifyBooking(ctx context.Context, a *domain.Appointment, barberName, serviceName string) error {
	if len(d.senders) == 0 {
		return nil
	}

	n := NewBookingNotification(a, barberName, serviceName)

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrDispatcherClosed
	}

	// запрос завершится раньше отправки
	bgCtx := context.WithoutCancel(ctx)

	for _, s := range d.senders {
		select {
		case d.slots <- struct{}{}:
		default:
			d.fail(s, n, ErrQueueFull)
			continue
		}

		d.wg.Add(1)
		go func(s Sender) {
			defer d.wg.Done()
			defer func() { <-d.slots }()

			sendCtx, cancel := context.WithTimeout(bgCtx, d.timeout)
			defer cancel()

			if err := s.Send(sendCtx, n); err != nil {
				d.fail(s, n, err)
				return
			}
			d.log.Info("booking notification sent via %s: appointment_id=%s", s.Name(), n.AppointmentID)
		}(s)
	}

	return nil
}

func (d *Dispatcher) fail(s Sender, n BookingNotification, err error) {
	d.log.Error("booking notification via %s failed: appointment_id=%s, error=%v", s.Name(), n.AppointmentID, err)
	if d.metrics != nil {
		d.metrics.IncNotificationFailures(s.Name())
	}
}

// Close перестаёт принимать уведомления и ждёт отправки уже принятых
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
