package report

const sampleReportYAML = `
host: web01.example.com
configuration_version: abc123
status: changed
transaction_uuid: 4a0c7d5e-1f7e-4a39-9bb4-3d7a2f1c0e11
logs:
  - level: notice
    message: defined 'message' as 'hello'
    source: /Stage[main]/Motd/Notify[hello]/message
  - level: notice
    message: Applied catalog in 1.20 seconds
    source: Puppet
  - level: info
    message: Unscheduling refresh on Service[sshd]
    source: /Stage[main]/Ssh/Service[sshd]
  - level: warning
    message: unrelated noise
    source: Package[curl]
resource_statuses:
  File[/etc/motd]:
    resource: File[/etc/motd]
    resource_type: File
    title: /etc/motd
    events:
      - property: content
        status: success
  Package[vim]:
    resource: Package[vim]
    resource_type: Package
    events: []
  Notify[hello]:
    resource: Notify[hello]
    resource_type: Notify
    events: []
  Package[curl]:
    resource: Package[curl]
    resource_type: Package
    events: []
  Service[sshd]:
    resource: Service[sshd]
    resource_type: Service
    events: []
`

const sampleReportJSON = `{
  "host": "db01.example.com",
  "configuration_version": "0f1e2d3c4b5a",
  "metrics": {"time": {"values": [["total", "Total", 1.5]]}},
  "logs": [
    {"level": "notice", "message": "changed", "source": "/Stage[main]/Db/Exec[migrate]/returns"}
  ],
  "resource_statuses": {
    "Exec[migrate]": {"resource": "Exec[migrate]", "events": []},
    "File[/etc/db.conf]": {"resource": "File[/etc/db.conf]", "events": []}
  }
}`
