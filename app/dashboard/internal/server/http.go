package server

import (
	"bytes"
	"io"
	nethttp "net/http"
	"time"

	"github.com/go-kratos/kratos/v2/encoding"
	"github.com/go-kratos/kratos/v2/encoding/json"
	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/conf"
	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/domain"
	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/service"
)

const (
	defaultAddr    = "0.0.0.0:3000"
	defaultTimeout = 180 * time.Second
)

func NewHTTPServer(c *conf.Server, s *service.DashboardService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
			logging.Server(logger),
		),
		http.RequestDecoder(decodeRequest),
		http.ErrorEncoder(encodeError),
	}

	addr, timeout := defaultAddr, defaultTimeout
	if c != nil && c.Http != nil {
		if c.Http.Addr != "" {
			addr = c.Http.Addr
		}
		if c.Http.Timeout != "" {
			if d, err := time.ParseDuration(c.Http.Timeout); err == nil {
				timeout = d
			} else {
				log.NewHelper(logger).Warnf("invalid http timeout %q, using %s", c.Http.Timeout, defaultTimeout)
			}
		}
	}
	opts = append(opts, http.Address(addr), http.Timeout(timeout))

	srv := http.NewServer(opts...)
	service.RegisterDashboardHTTPServer(srv, s)
	return srv
}

// decodeRequest 请求体一律按 JSON 解析，空请求体视为 {}
func decodeRequest(r *nethttp.Request, v interface{}) error {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return domain.ErrInvalidJSON()
	}
	r.Body = io.NopCloser(bytes.NewBuffer(data))
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := encoding.GetCodec(json.Name).Unmarshal(data, v); err != nil {
		return domain.ErrInvalidJSON()
	}
	return nil
}

// encodeError 错误响应统一为 {error, details}
func encodeError(w nethttp.ResponseWriter, _ *nethttp.Request, err error) {
	se := errors.FromError(err)
	body := service.ErrorReply{Error: se.Message, Details: se.Metadata[domain.DetailsKey]}
	if body.Error == "" {
		body.Error = nethttp.StatusText(int(se.Code))
	}

	data, mErr := encoding.GetCodec(json.Name).Marshal(body)
	if mErr != nil {
		w.WriteHeader(nethttp.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(int(se.Code))
	_, _ = w.Write(data)
}
