package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"

	"inspirehub/config"
	"inspirehub/infras/kafka"
	"inspirehub/infras/mail"
	"inspirehub/infras/otel"
	"inspirehub/internal/domains/booking/event"
	memberModel "inspirehub/internal/domains/member/model"
	memberRepo "inspirehub/internal/domains/member/repository"
	"inspirehub/shared"
	"inspirehub/shared/constant"
)

const handleTimeout = 30 * time.Second

// Notifier consumes booking events and mails the affected member. Delivery is
// best effort: a failed send is logged and the message is not retried.
type Notifier struct {
	consumer kafka.Client
	members  memberRepo.Member
	mailer   mail.Mailer
	cfg      *config.Config
	otel     otel.Otel
}

func NewNotifier(consumer kafka.Client, members memberRepo.Member, mailer mail.Mailer, cfg *config.Config, otel otel.Otel) *Notifier {
	return &Notifier{
		consumer: consumer,
		members:  members,
		mailer:   mailer,
		cfg:      cfg,
		otel:     otel,
	}
}

// Run blocks consuming the booking events topic until the context is
// cancelled.
func (n *Notifier) Run(ctx context.Context) {
	log.Info().Str("topic", n.cfg.Kafka.Topic.BookingEvents).Msg("Booking notifier started.")

	n.consumer.Consume(ctx, n.cfg.Kafka.ConsumerGroup, n.cfg.Kafka.Topic.BookingEvents, n.handle)
}

func (n *Notifier) handle(msg kafkaGo.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	ctx, scope := n.otel.NewScope(ctx, constant.OtelWorkerScopeName, constant.OtelWorkerScopeName+".notify")
	defer scope.End()

	decoded, err := kafka.DecodeKafkaMessage[event.BookingEvent](msg)
	if err != nil {
		log.Error().Err(err).Msg("failed to decode booking event")
		scope.TraceError(err)

		return
	}

	evt, ok := decoded.Value.(event.BookingEvent)
	if !ok {
		log.Error().Msg("booking event has unexpected payload type")

		return
	}

	member, err := n.members.Get(ctx, shared.FilterByID(evt.MemberID, memberModel.FieldID, memberModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("member_id", evt.MemberID).Msg("failed to look up member for notification")
		scope.TraceError(err)

		return
	}

	if member.ID == constant.Empty || member.Email == constant.Empty {
		log.Warn().Str("member_id", evt.MemberID).Msg("no member email for booking event, skipping notification")

		return
	}

	message := composeMessage(member.Email, evt)

	if err := n.mailer.Send(ctx, message); err != nil {
		log.Warn().Err(err).Str("booking_id", evt.BookingID).Msg("failed to send booking notification")
		scope.TraceError(err)
	}
}

func composeMessage(to string, evt event.BookingEvent) mail.Message {
	var subject, lede string

	switch evt.Outcome {
	case event.OutcomeAccepted:
		subject = "Your booking is confirmed"
		lede = "Good news: your booking has been confirmed."
	case event.OutcomeRejected:
		subject = "Your booking was declined"
		lede = "Unfortunately your booking was declined."
	case event.OutcomeCancelled:
		subject = "Your booking is back to pending"
		lede = "Your booking was re-opened and is pending review again."
	case event.OutcomeDone:
		subject = "Your booking is complete"
		lede = "Your booking has ended. Thanks for visiting."
	default:
		subject = "Your booking was updated"
		lede = "Your booking status has changed."
	}

	body := fmt.Sprintf("%s\n\nDate: %s\nTime: %s - %s\n", lede, evt.BookingDate, evt.StartTime, evt.EndTime)

	if evt.Reason != "" {
		body += fmt.Sprintf("Reason: %s\n", evt.Reason)
	}

	return mail.Message{
		To:      to,
		Subject: subject,
		Body:    body,
	}
}
